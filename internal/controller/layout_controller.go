package controller

import (
	"nautto-be/internal/dto"
	"nautto-be/internal/entity"
	"nautto-be/internal/hypermedia"
	"nautto-be/internal/pkg/serverutils"
	"nautto-be/internal/schema"
	"nautto-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILayoutController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetByUser(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	CreateForUser(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowInSet(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type layoutController struct {
	service service.ILayoutService
}

func NewLayoutController(service service.ILayoutService) ILayoutController {
	return &layoutController{service: service}
}

func (c *layoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/layouts")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id/", c.Show)
	h.Put("/:id/", c.Update)
	h.Delete("/:id/", c.Delete)

	r.Get("/users/:user/layouts/", c.GetByUser)
	r.Post("/users/:user/layouts/", c.CreateForUser)
	r.Get("/sets/:set/layouts/:id/", c.ShowInSet)
}

func (c *layoutController) GetAll(ctx *fiber.Ctx) error {
	layouts, err := c.service.GetAll(ctx.UserContext(), nil)
	if err != nil {
		return err
	}
	body := collectionDocument(schema.KindLayout, hypermedia.CollectionURL(schema.KindLayout), layoutItems(layouts, nil))
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *layoutController) GetByUser(ctx *fiber.Ctx) error {
	userId, err := serverutils.ParamID(ctx, "user", schema.KindUser.String())
	if err != nil {
		return err
	}
	layouts, err := c.service.GetAll(ctx.UserContext(), &userId)
	if err != nil {
		return err
	}

	self := hypermedia.UserCollectionURL(userId, schema.KindLayout)
	body := collectionDocument(schema.KindLayout, self, layoutItems(layouts, nil))
	byUserControls(body, schema.KindLayout, userId)
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *layoutController) Create(ctx *fiber.Ctx) error {
	layout, err := c.service.Create(ctx.UserContext(), nil, serverutils.RequestBody(ctx))
	if err != nil {
		return err
	}
	return serverutils.Created(ctx, hypermedia.ItemURL(schema.KindLayout, layout.Id))
}

func (c *layoutController) CreateForUser(ctx *fiber.Ctx) error {
	userId, err := serverutils.ParamID(ctx, "user", schema.KindUser.String())
	if err != nil {
		return err
	}
	layout, err := c.service.Create(ctx.UserContext(), &userId, serverutils.RequestBody(ctx))
	if err != nil {
		return err
	}
	return serverutils.Created(ctx, hypermedia.ItemURL(schema.KindLayout, layout.Id))
}

func (c *layoutController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindLayout.String())
	if err != nil {
		return err
	}
	detail, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.WriteDocument(ctx, fiber.StatusOK, layoutDocument(detail))
}

func (c *layoutController) ShowInSet(ctx *fiber.Ctx) error {
	setId, err := serverutils.ParamID(ctx, "set", schema.KindSet.String())
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id", schema.KindLayout.String())
	if err != nil {
		return err
	}
	detail, err := c.service.ShowInSet(ctx.UserContext(), setId, id)
	if err != nil {
		return err
	}

	body := layoutDocument(detail)
	body.AddControl("up", hypermedia.ItemURL(schema.KindSet, setId))
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *layoutController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindLayout.String())
	if err != nil {
		return err
	}
	if err := c.service.Update(ctx.UserContext(), id, serverutils.RequestBody(ctx)); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}

func (c *layoutController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindLayout.String())
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}

// layoutDocument embeds the member widgets, linked through the layout.
func layoutDocument(detail *dto.LayoutDetail) *hypermedia.Builder {
	l := detail.Layout
	members := make([]*hypermedia.Builder, 0, len(detail.Widgets))
	for _, w := range detail.Widgets {
		members = append(members, hypermedia.Item(schema.KindWidget, w.Id, w.Name, hypermedia.WidgetOfLayoutURL(l.Id, w.Id)))
	}

	body := hypermedia.NewRoot()
	body.Set("id", l.Id)
	body.Set("name", l.Name)
	body.Set("description", optional(l.Description))
	body.Set("items", members)
	itemControls(body, schema.KindLayout, l.Id, l.UserId)
	return body
}

// layoutItems lists layouts, linked through setId when it is set.
func layoutItems(layouts []*entity.Layout, setId *uint) []*hypermedia.Builder {
	items := make([]*hypermedia.Builder, 0, len(layouts))
	for _, l := range layouts {
		self := hypermedia.ItemURL(schema.KindLayout, l.Id)
		if setId != nil {
			self = hypermedia.LayoutOfSetURL(*setId, l.Id)
		}
		items = append(items, hypermedia.Item(schema.KindLayout, l.Id, l.Name, self))
	}
	return items
}
