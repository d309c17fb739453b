// Package schema holds the JSON Schemas of the API's resources.
//
// The schemas serve two purposes: request bodies of POST and PUT are validated
// against them, and they are published in add and edit hypermedia controls so
// clients can discover the expected payload.
package schema

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

type entry struct {
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
}

var registry = mustBuild()

func mustBuild() map[Kind]entry {
	r := make(map[Kind]entry, len(Kinds))
	for _, k := range Kinds {
		s := define(k)
		resolved, err := s.Resolve(&jsonschema.ResolveOptions{})
		if err != nil {
			panic(fmt.Sprintf("schema: resolve %s: %v", k, err))
		}
		r[k] = entry{schema: s, resolved: resolved}
	}
	return r
}

// Column widths of the bounded string fields.
const (
	maxNameLength        = 128
	maxLayoutNameLength  = 120
	maxDescriptionLength = 1024
	maxTypeLength        = 64
)

func define(k Kind) *jsonschema.Schema {
	nameLength := maxNameLength
	if k == KindLayout {
		nameLength = maxLayoutNameLength
	}
	props := map[string]*jsonschema.Schema{
		"id": {Type: "string"},
		"name": {
			Description: fmt.Sprintf("%s's name", k.Title()),
			Type:        "string",
			MaxLength:   jsonschema.Ptr(nameLength),
		},
		"description": {
			Description: fmt.Sprintf("Description of the %s", k),
			Type:        "string",
			MaxLength:   jsonschema.Ptr(maxDescriptionLength),
		},
	}
	required := []string{"name"}

	switch k {
	case KindUser:
	case KindWidget:
		props["type"] = &jsonschema.Schema{
			Description: "Type of the widget",
			Type:        "string",
			MaxLength:   jsonschema.Ptr(maxTypeLength),
		}
		props["content"] = &jsonschema.Schema{Description: "Content of the widget", Type: "string"}
		required = append(required, "type", "content")
	case KindLayout:
		props["items"] = &jsonschema.Schema{Description: "Widget ids of the layout", Type: "array"}
	case KindSet:
		props["items"] = &jsonschema.Schema{Description: "Layout ids of the set", Type: "array"}
	default:
		panic(fmt.Sprintf("schema: no definition for %s", k))
	}

	return &jsonschema.Schema{
		Type:       "object",
		Required:   required,
		Properties: props,
	}
}

func lookup(k Kind) entry {
	e, ok := registry[k]
	if !ok {
		panic(fmt.Sprintf("schema: unknown resource kind %s", k))
	}
	return e
}

// For returns the JSON Schema of k. It panics for a kind outside Kinds.
func For(k Kind) *jsonschema.Schema {
	return lookup(k).schema
}

// Validate checks a decoded JSON document against the schema of k.
func Validate(k Kind, instance any) error {
	return lookup(k).resolved.Validate(instance)
}
