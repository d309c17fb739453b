package serverutils

import (
	"encoding/json"

	"nautto-be/internal/hypermedia"

	"github.com/gofiber/fiber/v2"
)

// WriteDocument sends doc as a Mason document.
func WriteDocument(ctx *fiber.Ctx, status int, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, hypermedia.MediaType)
	return ctx.Status(status).Send(body)
}

// Created answers a successful POST with the location of the new resource
// and an empty body.
func Created(ctx *fiber.Ctx, location string) error {
	ctx.Location(location)
	ctx.Status(fiber.StatusCreated)
	return nil
}

// NoContent leaves the body empty. SendStatus would fill it with the status
// text.
func NoContent(ctx *fiber.Ctx) error {
	ctx.Status(fiber.StatusNoContent)
	return nil
}
