// Package hypermedia builds the API's Mason documents.
//
// Builder layers the resource specific affordances (add, edit and delete
// controls carrying the resource schema) on top of the generic mason.Document.
// The package also owns the canonical URLs of every resource so controllers
// never format paths by hand.
package hypermedia

import (
	"fmt"

	"nautto-be/internal/pkg/mason"
	"nautto-be/internal/schema"
)

const (
	MediaType = "application/vnd.mason+json"

	Namespace        = "nautto"
	LinkRelationsURL = "/nautto/link-relations/"
	ErrorProfile     = "/profiles/error/"
)

// Builder is a mason.Document with nautto specific controls.
type Builder struct {
	*mason.Document
}

func NewBuilder() *Builder {
	return &Builder{Document: mason.New()}
}

// NewRoot returns a builder with the nautto namespace registered, the starting
// point of every top-level response.
func NewRoot() *Builder {
	b := NewBuilder()
	b.AddNamespace(Namespace, LinkRelationsURL)
	return b
}

// Relation prefixes name with the nautto namespace.
func Relation(name string) string {
	return Namespace + ":" + name
}

// Profile is the documentation URI of kind.
func Profile(kind schema.Kind) string {
	return fmt.Sprintf("/profiles/%s/", kind)
}

// AddAddControl advertises how to create a new resource of kind at href.
func (b *Builder) AddAddControl(kind schema.Kind, href string) {
	b.AddControl(Relation("add-"+kind.String()), href,
		mason.WithMethod("POST"),
		mason.WithEncoding("json"),
		mason.WithTitle(fmt.Sprintf("Add a new %s", kind)),
		mason.WithSchema(schema.For(kind)),
	)
}

// AddEditControl advertises how to replace the resource at href.
func (b *Builder) AddEditControl(kind schema.Kind, href string) {
	b.AddControl("edit", href,
		mason.WithMethod("PUT"),
		mason.WithEncoding("json"),
		mason.WithTitle(fmt.Sprintf("Edit this %s", kind)),
		mason.WithSchema(schema.For(kind)),
	)
}

// AddDeleteControl advertises how to delete the resource at href.
func (b *Builder) AddDeleteControl(kind schema.Kind, href string) {
	b.AddControl(Relation("delete"), href,
		mason.WithMethod("DELETE"),
		mason.WithTitle(fmt.Sprintf("Delete this %s", kind)),
	)
}

// Item is the lightweight representation used inside "items" listings.
func Item(kind schema.Kind, id uint, name, self string) *Builder {
	b := NewBuilder()
	b.Set("id", id)
	b.Set("name", name)
	b.AddControl("self", self)
	b.AddControl("profile", Profile(kind))
	return b
}
