// Package mason assembles JSON documents in the Mason hypermedia format.
//
// Only the subset used by the API is supported: plain payload fields plus the
// @namespaces, @controls and @error extensions. The package does no validation;
// a Document is a structural builder that is serialised with encoding/json.
package mason

import (
	"bytes"
	"encoding/json"
)

const (
	keyNamespaces = "@namespaces"
	keyControls   = "@controls"
	keyError      = "@error"
)

// Namespace maps a link relation prefix to its documentation URI.
type Namespace struct {
	Name string `json:"name"`
}

// Error is the @error block of a top-level error document.
type Error struct {
	Message  string   `json:"@message"`
	Messages []string `json:"@messages"`
}

// Document is a Mason object. Payload fields keep their insertion order.
type Document struct {
	fields     ordered[any]
	namespaces ordered[Namespace]
	controls   ordered[*Control]
	err        *Error
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Set stores a payload field. Overwriting keeps the field's original position.
func (d *Document) Set(key string, value any) *Document {
	d.fields.set(key, value)
	return d
}

// Get returns a payload field.
func (d *Document) Get(key string) (any, bool) {
	return d.fields.get(key)
}

// AddNamespace registers prefix under @namespaces. The last write wins.
func (d *Document) AddNamespace(prefix, uri string) *Document {
	d.namespaces.set(prefix, Namespace{Name: uri})
	return d
}

// Namespace returns the namespace registered for prefix.
func (d *Document) Namespace(prefix string) (Namespace, bool) {
	return d.namespaces.get(prefix)
}

// AddControl registers a control, replacing any control with the same name.
func (d *Document) AddControl(name, href string, opts ...ControlOption) *Document {
	ctrl := &Control{Href: href}
	for _, opt := range opts {
		opt(ctrl)
	}
	d.controls.set(name, ctrl)
	return d
}

// Control returns the control registered under name.
func (d *Document) Control(name string) (*Control, bool) {
	return d.controls.get(name)
}

// ControlNames lists control names in registration order.
func (d *Document) ControlNames() []string {
	return append([]string(nil), d.controls.keys...)
}

// AddError sets the @error block. Only meant for top-level error documents.
func (d *Document) AddError(title, details string) *Document {
	d.err = &Error{Message: title, Messages: []string{details}}
	return d
}

// ErrorBlock returns the @error block, if any.
func (d *Document) ErrorBlock() *Error {
	return d.err
}

// MarshalJSON merges the payload fields with the Mason extensions.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	write := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	for _, key := range d.fields.keys {
		if err := write(key, d.fields.values[key]); err != nil {
			return nil, err
		}
	}
	if d.namespaces.len() > 0 {
		if err := write(keyNamespaces, &d.namespaces); err != nil {
			return nil, err
		}
	}
	if d.controls.len() > 0 {
		if err := write(keyControls, &d.controls); err != nil {
			return nil, err
		}
	}
	if d.err != nil {
		if err := write(keyError, d.err); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
