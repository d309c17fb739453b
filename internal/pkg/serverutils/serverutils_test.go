package serverutils_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"nautto-be/internal/hypermedia"
	"nautto-be/internal/pkg/apperror"
	"nautto-be/internal/pkg/logger"
	"nautto-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: serverutils.ErrorHandler(logger.NewNopLogger()),
	})
	app.Use(serverutils.RequestLogger(logger.NewNopLogger()))
	app.All("/things/:id/", handler)
	return app
}

func call(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func TestErrorHandlerEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		title   string
		message string
	}{
		{"media type", apperror.UnsupportedMediaType("Requests must be JSON"), 415, "Unsupported media type", "Requests must be JSON"},
		{"validation", apperror.InvalidDocument("name is required"), 400, "Invalid JSON document", "name is required"},
		{"not found", apperror.NotFound("No user was found with the id %d", 3), 404, "Not found", "No user was found with the id 3"},
		{"conflict", apperror.AlreadyExists("User with id '%d' already exists.", 3), 409, "Already exists", "User with id '3' already exists."},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), 405, "Method Not Allowed", "nope"},
		{"unexpected", errors.New("db is down"), 500, "Internal server error", "The server encountered an unexpected condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(func(ctx *fiber.Ctx) error { return tt.err })

			resp, body := call(t, app, httptest.NewRequest(http.MethodGet, "/things/1/", nil))

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, hypermedia.MediaType, resp.Header.Get("Content-Type"))
			assert.Equal(t, "/things/1/", body["resource_url"])
			assert.Equal(t, map[string]interface{}{
				"@message":  tt.title,
				"@messages": []interface{}{tt.message},
			}, body["@error"])
			assert.Equal(t, map[string]interface{}{
				"profile": map[string]interface{}{"href": hypermedia.ErrorProfile},
			}, body["@controls"])
			assert.NotEmpty(t, resp.Header.Get(serverutils.HeaderRequestID))
		})
	}
}

func TestRequestBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     bool
	}{
		{"json", "application/json", `{"name":"a"}`, false},
		{"json with charset", "application/json; charset=utf-8", `{}`, false},
		{"mason", hypermedia.MediaType, `{}`, false},
		{"plain text", "text/plain", `{}`, true},
		{"no content type", "", `{}`, true},
		{"empty body", "application/json", "", true},
		{"blank body", "application/json", "  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw []byte
			var rawErr error
			app := newApp(func(ctx *fiber.Ctx) error {
				raw, rawErr = serverutils.RequestBody(ctx).Raw()
				return nil
			})

			req := httptest.NewRequest(http.MethodPost, "/things/1/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			_, _ = call(t, app, req)

			if tt.wantErr {
				assert.ErrorIs(t, rawErr, apperror.ErrMediaType)
				return
			}
			require.NoError(t, rawErr)
			assert.Equal(t, tt.body, string(raw))
		})
	}
}

func TestParamID(t *testing.T) {
	tests := []struct {
		param   string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			var got uint
			var gotErr error
			app := newApp(func(ctx *fiber.Ctx) error {
				got, gotErr = serverutils.ParamID(ctx, "id", "widget")
				return nil
			})
			_, _ = call(t, app, httptest.NewRequest(http.MethodGet, "/things/"+tt.param+"/", nil))

			if tt.wantErr {
				assert.ErrorIs(t, gotErr, apperror.ErrNotFound)
				assert.Contains(t, gotErr.Error(), "No widget was found with the id "+tt.param)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreatedAndNoContent(t *testing.T) {
	app := newApp(func(ctx *fiber.Ctx) error {
		if ctx.Method() == http.MethodPost {
			return serverutils.Created(ctx, "/things/2/")
		}
		return serverutils.NoContent(ctx)
	})

	resp, body := call(t, app, httptest.NewRequest(http.MethodPost, "/things/1/", nil))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/things/2/", resp.Header.Get("Location"))
	assert.Nil(t, body)

	resp, body = call(t, app, httptest.NewRequest(http.MethodDelete, "/things/1/", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, body)
}

type logEntry struct {
	level   string
	message string
	details map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, details: details})
}

func (l *recordingLogger) Debug(_, message string, details map[string]interface{}) {
	l.record("debug", message, details)
}

func (l *recordingLogger) Info(_, message string, details map[string]interface{}) {
	l.record("info", message, details)
}

func (l *recordingLogger) Warn(_, message string, details map[string]interface{}) {
	l.record("warn", message, details)
}

func (l *recordingLogger) Error(_, message string, details map[string]interface{}) {
	l.record("error", message, details)
}

func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) find(message string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.message == message {
			return e, true
		}
	}
	return logEntry{}, false
}

func TestRequestLoggerSeesRecoveredPanics(t *testing.T) {
	log := &recordingLogger{}
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler(log)})
	app.Use(serverutils.RequestLogger(log))
	app.Use(recover.New())
	app.Get("/boom/", func(ctx *fiber.Ctx) error {
		panic("nil map write")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom/", nil)
	req.Header.Set(serverutils.HeaderRequestID, "req-42")
	resp, body := call(t, app, req)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "req-42", resp.Header.Get(serverutils.HeaderRequestID))
	assert.Equal(t, "Internal server error", body["@error"].(map[string]interface{})["@message"])

	handled, ok := log.find("Request handled")
	require.True(t, ok, "request was not logged")
	assert.Equal(t, "req-42", handled.details["request_id"])
	assert.Equal(t, http.StatusInternalServerError, handled.details["status"])
	assert.Equal(t, "/boom/", handled.details["path"])

	failed, ok := log.find("Request failed")
	require.True(t, ok, "5xx was not logged")
	assert.Equal(t, "req-42", failed.details["request_id"])
}
