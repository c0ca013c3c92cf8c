package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"video-quiz/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handlerErr error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestID())
	app.Use(RequestLogger())
	app.Get("/api/fail", func(c *fiber.Ctx) error { return handlerErr })
	app.Get("/page", func(c *fiber.Ctx) error { return handlerErr })
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        domain.NewValidationError("video_id", "video_id is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   string(domain.CodeValidation),
		},
		{
			name:       "upstream error",
			err:        domain.NewUpstreamError("chat", 500, errors.New("internal")),
			wantStatus: http.StatusBadGateway,
			wantCode:   string(domain.CodeUpstream),
		},
		{
			name:       "upstream timeout",
			err:        domain.NewTimeoutError("chat", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   string(domain.CodeUpstreamTimeout),
		},
		{
			name:       "not found",
			err:        domain.NewNotFoundError("video not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   string(domain.CodeNotFound),
		},
		{
			name:       "fiber error",
			err:        fiber.NewError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("kaboom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   string(domain.CodeInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.err)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/fail", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	app := newTestApp(errors.New("database password is hunter2"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/fail", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestErrorHandler_NonHTMLClientGetsJSON(t *testing.T) {
	app := newTestApp(domain.NewValidationError("video_id", "video_id is required"))

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFrom(c))
	})

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		id := resp.Header.Get(RequestIDHeader)
		assert.Len(t, id, 26)
	})

	t.Run("client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
	})
}
