package middleware

import (
	"errors"
	"net/http"
	"strings"

	"video-quiz/internal/domain"
	"video-quiz/internal/logger"
	"video-quiz/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorHandler is the centralized fiber error handler. API routes get an
// ErrorResponse body, page routes get the error page.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()
		response := ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		}

		var domainErr *domain.DomainError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &domainErr):
			response.Code = string(domainErr.Code)
			response.Message = domainErr.Message
			response.Status = StatusFor(domainErr)
			if len(domainErr.Context) > 0 {
				response.Details = domainErr.Context
			}

			fields := []zap.Field{
				zap.String("path", c.Path()),
				zap.String("code", response.Code),
				zap.Int("status", response.Status),
				zap.Error(err),
			}
			if response.Status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Warn("Domain error occurred", fields...)
			}
		case errors.As(err, &fiberErr):
			response.Code = "HTTP_ERROR"
			response.Message = fiberErr.Message
			response.Status = fiberErr.Code
			log.Warn("Fiber error occurred",
				zap.String("path", c.Path()),
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
		default:
			log.Error("Unknown error occurred",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api") || c.Accepts(fiber.MIMETextHTML) == "" {
			return c.Status(response.Status).JSON(response)
		}

		c.Status(response.Status)
		if renderErr := c.Render("error", fiber.Map{
			"Title":   http.StatusText(response.Status),
			"Status":  response.Status,
			"Message": response.Message,
		}, web.Layout); renderErr != nil {
			log.Error("Failed to render error page", zap.Error(renderErr))
			return c.Status(response.Status).SendString(response.Message)
		}
		return nil
	}
}

// StatusFor maps a domain error to its HTTP status code.
func StatusFor(err error) int {
	switch domain.CodeOf(err) {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUpstreamTimeout:
		return http.StatusGatewayTimeout
	case domain.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
