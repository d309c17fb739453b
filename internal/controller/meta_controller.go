package controller

import (
	"sort"

	"nautto-be/internal/hypermedia"
	"nautto-be/internal/pkg/apperror"
	"nautto-be/internal/pkg/mason"
	"nautto-be/internal/pkg/serverutils"
	"nautto-be/internal/schema"

	"github.com/gofiber/fiber/v2"
)

// linkRelations documents every relation of the nautto namespace.
var linkRelations = map[string]string{
	"add-user":    "Creates a user in the collection.",
	"add-widget":  "Creates a widget in the collection.",
	"add-layout":  "Creates a layout in the collection.",
	"add-set":     "Creates a set in the collection.",
	"delete":      "Deletes the resource.",
	"widgets-by":  "Widgets owned by the user.",
	"layouts-by":  "Layouts owned by the user.",
	"sets-by":     "Sets owned by the user.",
	"users-all":   "Every user.",
	"widgets-all": "Every widget, regardless of owner.",
	"layouts-all": "Every layout, regardless of owner.",
	"sets-all":    "Every set, regardless of owner.",
}

type IMetaController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	LinkRelations(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
}

type metaController struct{}

func NewMetaController() IMetaController {
	return &metaController{}
}

func (c *metaController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Get(hypermedia.LinkRelationsURL, c.LinkRelations)
	r.Get("/profiles/:profile/", c.Profile)
}

// Index is the API entry point, linking every collection.
func (c *metaController) Index(ctx *fiber.Ctx) error {
	body := hypermedia.NewRoot()
	body.Set("name", "nautto")
	for _, kind := range schema.Kinds {
		body.AddControl(hypermedia.Relation(kind.Plural()+"-all"), hypermedia.CollectionURL(kind),
			mason.WithTitle("All "+kind.Plural()),
		)
	}
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *metaController) LinkRelations(ctx *fiber.Ctx) error {
	names := make([]string, 0, len(linkRelations))
	for name := range linkRelations {
		names = append(names, name)
	}
	sort.Strings(names)

	relations := make([]*hypermedia.Builder, 0, len(names))
	for _, name := range names {
		rel := hypermedia.NewBuilder()
		rel.Set("name", hypermedia.Relation(name))
		rel.Set("description", linkRelations[name])
		relations = append(relations, rel)
	}

	body := hypermedia.NewRoot()
	body.Set("relations", relations)
	body.AddControl("self", hypermedia.LinkRelationsURL)
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

// Profile describes one resource kind, or the error envelope.
func (c *metaController) Profile(ctx *fiber.Ctx) error {
	name := ctx.Params("profile")
	body := hypermedia.NewRoot()
	body.AddControl("self", ctx.Path())

	if name == "error" {
		body.Set("name", "error")
		body.Set("description", "Every failed request is answered with resource_url and an @error block.")
		return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
	}

	kind, err := schema.ParseKind(name)
	if err != nil {
		return apperror.NotFound("No profile was found with the name %s", name)
	}
	body.Set("name", kind.String())
	body.Set("schema", schema.For(kind))
	body.AddControl("collection", hypermedia.CollectionURL(kind))
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}
