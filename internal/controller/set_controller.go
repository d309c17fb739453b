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

type ISetController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetByUser(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	CreateForUser(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type setController struct {
	service service.ISetService
}

func NewSetController(service service.ISetService) ISetController {
	return &setController{service: service}
}

func (c *setController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sets")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id/", c.Show)
	h.Put("/:id/", c.Update)
	h.Delete("/:id/", c.Delete)

	r.Get("/users/:user/sets/", c.GetByUser)
	r.Post("/users/:user/sets/", c.CreateForUser)
}

func (c *setController) GetAll(ctx *fiber.Ctx) error {
	sets, err := c.service.GetAll(ctx.UserContext(), nil)
	if err != nil {
		return err
	}
	body := collectionDocument(schema.KindSet, hypermedia.CollectionURL(schema.KindSet), setItems(sets))
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *setController) GetByUser(ctx *fiber.Ctx) error {
	userId, err := serverutils.ParamID(ctx, "user", schema.KindUser.String())
	if err != nil {
		return err
	}
	sets, err := c.service.GetAll(ctx.UserContext(), &userId)
	if err != nil {
		return err
	}

	self := hypermedia.UserCollectionURL(userId, schema.KindSet)
	body := collectionDocument(schema.KindSet, self, setItems(sets))
	byUserControls(body, schema.KindSet, userId)
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *setController) Create(ctx *fiber.Ctx) error {
	set, err := c.service.Create(ctx.UserContext(), nil, serverutils.RequestBody(ctx))
	if err != nil {
		return err
	}
	return serverutils.Created(ctx, hypermedia.ItemURL(schema.KindSet, set.Id))
}

func (c *setController) CreateForUser(ctx *fiber.Ctx) error {
	userId, err := serverutils.ParamID(ctx, "user", schema.KindUser.String())
	if err != nil {
		return err
	}
	set, err := c.service.Create(ctx.UserContext(), &userId, serverutils.RequestBody(ctx))
	if err != nil {
		return err
	}
	return serverutils.Created(ctx, hypermedia.ItemURL(schema.KindSet, set.Id))
}

func (c *setController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindSet.String())
	if err != nil {
		return err
	}
	detail, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.WriteDocument(ctx, fiber.StatusOK, setDocument(detail))
}

func (c *setController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindSet.String())
	if err != nil {
		return err
	}
	if err := c.service.Update(ctx.UserContext(), id, serverutils.RequestBody(ctx)); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}

func (c *setController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindSet.String())
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}

func setDocument(detail *dto.SetDetail) *hypermedia.Builder {
	s := detail.Set
	body := hypermedia.NewRoot()
	body.Set("id", s.Id)
	body.Set("name", s.Name)
	body.Set("description", optional(s.Description))
	body.Set("items", layoutItems(detail.Layouts, &s.Id))
	itemControls(body, schema.KindSet, s.Id, s.UserId)
	return body
}

func setItems(sets []*entity.Set) []*hypermedia.Builder {
	items := make([]*hypermedia.Builder, 0, len(sets))
	for _, s := range sets {
		items = append(items, hypermedia.Item(schema.KindSet, s.Id, s.Name, hypermedia.ItemURL(schema.KindSet, s.Id)))
	}
	return items
}
