package serverutils

import (
	"errors"
	"net/http"

	"nautto-be/internal/hypermedia"
	"nautto-be/internal/pkg/apperror"
	"nautto-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error returned by a handler as a Mason error
// document. Errors that do not belong to the apperror taxonomy are logged and
// reported as 500 without details.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := apperror.StatusCode(err)
		title := "Internal server error"
		message := "The server encountered an unexpected condition"

		var appErr *apperror.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			title, message = appErr.Title, appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			title, message = http.StatusText(status), fiberErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"request_id": ctx.GetRespHeader(HeaderRequestID),
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"error":      err,
			})
		}
		return WriteError(ctx, status, title, message)
	}
}

// WriteError sends the error envelope for the current request.
func WriteError(ctx *fiber.Ctx, status int, title, message string) error {
	doc := hypermedia.NewBuilder()
	doc.Set("resource_url", ctx.Path())
	doc.AddError(title, message)
	doc.AddControl("profile", hypermedia.ErrorProfile)
	return WriteDocument(ctx, status, doc)
}
