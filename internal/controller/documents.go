package controller

import (
	"nautto-be/internal/hypermedia"
	"nautto-be/internal/schema"
)

// collectionDocument is the shared shape of every list response.
func collectionDocument(kind schema.Kind, self string, items []*hypermedia.Builder) *hypermedia.Builder {
	body := hypermedia.NewRoot()
	body.Set("items", items)
	body.AddControl("self", self)
	body.AddAddControl(kind, self)
	return body
}

// byUserControls decorates a collection filtered by its owner.
func byUserControls(body *hypermedia.Builder, kind schema.Kind, userId uint) {
	body.AddControl("author", hypermedia.ItemURL(schema.KindUser, userId))
	body.AddControl(hypermedia.Relation(kind.Plural()+"-all"), hypermedia.CollectionURL(kind))
}

// itemControls adds the navigation and mutation controls of a full
// representation. owner is nil for ownerless resources.
func itemControls(body *hypermedia.Builder, kind schema.Kind, id uint, owner *uint) {
	self := hypermedia.ItemURL(kind, id)
	body.AddControl("self", self)
	body.AddControl("profile", hypermedia.Profile(kind))
	body.AddControl("collection", hypermedia.CollectionURL(kind))
	if owner != nil {
		body.AddControl("author", hypermedia.ItemURL(schema.KindUser, *owner))
	}
	body.AddEditControl(kind, self)
	body.AddDeleteControl(kind, self)
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
