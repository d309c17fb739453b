package controller

import (
	"nautto-be/internal/hypermedia"
	"nautto-be/internal/pkg/serverutils"
	"nautto-be/internal/schema"
	"nautto-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id/", c.Show)
	h.Put("/:id/", c.Update)
	h.Delete("/:id/", c.Delete)
}

func (c *userController) GetAll(ctx *fiber.Ctx) error {
	users, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	items := make([]*hypermedia.Builder, 0, len(users))
	for _, u := range users {
		items = append(items, hypermedia.Item(schema.KindUser, u.Id, u.Name, hypermedia.ItemURL(schema.KindUser, u.Id)))
	}
	body := collectionDocument(schema.KindUser, hypermedia.CollectionURL(schema.KindUser), items)
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	user, err := c.service.Create(ctx.UserContext(), serverutils.RequestBody(ctx))
	if err != nil {
		return err
	}
	return serverutils.Created(ctx, hypermedia.ItemURL(schema.KindUser, user.Id))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindUser.String())
	if err != nil {
		return err
	}
	user, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	body := hypermedia.NewRoot()
	body.Set("id", user.Id)
	body.Set("name", user.Name)
	body.Set("description", optional(user.Description))
	itemControls(body, schema.KindUser, user.Id, nil)
	for _, kind := range []schema.Kind{schema.KindWidget, schema.KindLayout, schema.KindSet} {
		body.AddControl(hypermedia.Relation(kind.Plural()+"-by"), hypermedia.UserCollectionURL(user.Id, kind))
	}
	return serverutils.WriteDocument(ctx, fiber.StatusOK, body)
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindUser.String())
	if err != nil {
		return err
	}
	if err := c.service.Update(ctx.UserContext(), id, serverutils.RequestBody(ctx)); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id", schema.KindUser.String())
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return serverutils.NoContent(ctx)
}
