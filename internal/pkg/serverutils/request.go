package serverutils

import (
	"mime"
	"strconv"
	"strings"

	"nautto-be/internal/dto"
	"nautto-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type jsonBody struct {
	contentType string
	raw         []byte
}

// RequestBody captures the body of the request. Its content is checked when
// the service asks for it, so lookups that fail with 404 come first.
func RequestBody(ctx *fiber.Ctx) dto.Body {
	return &jsonBody{
		contentType: ctx.Get(fiber.HeaderContentType),
		// fiber reuses the request buffer once the handler returns.
		raw: append([]byte(nil), ctx.Body()...),
	}
}

func (b *jsonBody) Raw() ([]byte, error) {
	if !isJSON(b.contentType) || len(strings.TrimSpace(string(b.raw))) == 0 {
		return nil, apperror.UnsupportedMediaType("Requests must be JSON")
	}
	return b.raw, nil
}

// isJSON accepts application/json and any +json structured syntax suffix,
// the Mason media type included.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == fiber.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}

// ParamID reads a numeric path parameter. Anything that is not a positive
// integer cannot name a resource, so it is reported as not found.
func ParamID(ctx *fiber.Ctx, key, kind string) (uint, error) {
	raw := ctx.Params(key)
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, apperror.NotFound("No %s was found with the id %s", kind, raw)
	}
	return uint(id), nil
}
