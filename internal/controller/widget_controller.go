package controller

import (
	"nautto-be/internal/entity"
	"nautto-be/internal/hypermedia"
	"nautto-be/internal/pkg/serverutils"
	"nautto-be/internal/schema"
	"nautto-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWidgetController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetByUser(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	CreateForUser(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowInLayout(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type widgetController struct {
	service service.IWidgetService
}

func NewWidgetController(service service.IWidgetService) IWidgetController {
	return &widgetController{service: service}
}

func (c *widgetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/widgets")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id/", c.Show)
	h.Put("/:id/", c.Update)
	h.Delete("/:id/", c.Delete)

	r.Get("/users/:user/widgets/", c.GetByUser)
	r.Post("/users/:user/widgets/", c.CreateForUser)
	r.Get("/layouts/:layout/widgets/:id/", c.ShowInLayout)
}

func (c *widgetController) GetAll(ctx *fiber.Ctx) error {
	widgets, err := c.service.GetAll(ctx.UserContext(), nil)
	if err != nil {
		return err
	}
	body := collectionDocument(schema.KindWidget, hypermedia.CollectionURL(schema.KindWidget), widgetItems(widgets))
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *widgetController) GetByUser(ctx *fiber.Ctx) error {
	userId, err := serverutils.ParamID(ctx, "user", schema.KindUser.String())
	if err != nil {
		return err
	}
	widgets, err := c.service.GetAll(ctx.UserContext(), &userId)
	if err != nil {
		return err
	}

	self := hypermedia.UserCollectionURL(userId, schema.KindWidget)
	body := collectionDocument(schema.KindWidget, self, widgetItems(widgets))
	byUserControls(body, schema.KindWidget, userId)
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *widgetController) Create(ctx *fiber.Ctx) error {
	widget, err := c.service.Create(ctx.UserContext(), nil, serverutils.RequestBody(ctx))
	if err != nil {
		return err
	}
	return serverutils.Created(ctx, hypermedia.ItemURL(schema.KindWidget, widget.Id))
}

func (c *widgetController) CreateForUser(ctx *fiber.Ctx) error {
	userId, err := serverutils.ParamID(ctx, "user", schema.KindUser.String())
	if err != nil {
		return err
	}
	widget, err := c.service.Create(ctx.UserContext(), &userId, serverutils.RequestBody(ctx))
	if err != nil {
		return err
	}
	return serverutils.Created(ctx, hypermedia.ItemURL(schema.KindWidget, widget.Id))
}

func (c *widgetController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindWidget.String())
	if err != nil {
		return err
	}
	widget, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.WriteDocument(ctx, fiber.StatusOK, widgetDocument(widget))
}

func (c *widgetController) ShowInLayout(ctx *fiber.Ctx) error {
	layoutId, err := serverutils.ParamID(ctx, "layout", schema.KindLayout.String())
	if err != nil {
		return err
	}
	id, err := serverutils.ParamID(ctx, "id", schema.KindWidget.String())
	if err != nil {
		return err
	}
	widget, err := c.service.ShowInLayout(ctx.UserContext(), layoutId, id)
	if err != nil {
		return err
	}

	body := widgetDocument(widget)
	body.AddControl("up", hypermedia.ItemURL(schema.KindLayout, layoutId))
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *widgetController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindWidget.String())
	if err != nil {
		return err
	}
	if err := c.service.Update(ctx.UserContext(), id, serverutils.RequestBody(ctx)); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}

func (c *widgetController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindWidget.String())
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}

func widgetDocument(w *entity.Widget) *hypermedia.Builder {
	body := hypermedia.NewRoot()
	body.Set("id", w.Id)
	body.Set("name", w.Name)
	body.Set("description", optional(w.Description))
	body.Set("type", w.Type)
	body.Set("content", w.Content)
	itemControls(body, schema.KindWidget, w.Id, w.UserId)
	return body
}

func widgetItems(widgets []*entity.Widget) []*hypermedia.Builder {
	items := make([]*hypermedia.Builder, 0, len(widgets))
	for _, w := range widgets {
		items = append(items, hypermedia.Item(schema.KindWidget, w.Id, w.Name, hypermedia.ItemURL(schema.KindWidget, w.Id)))
	}
	return items
}
