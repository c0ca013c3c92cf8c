package handler

import (
	"context"
	"time"

	"video-quiz/internal/domain"
	"video-quiz/internal/dto"
	"video-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const cachePingTimeout = 2 * time.Second

// HealthHandler reports process health. It never calls the Vision service.
type HealthHandler struct {
	cache domain.Cache
}

func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), cachePingTimeout)
		defer cancel()

		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache ping failed", zap.Error(err))
			resp.Cache = "unavailable"
		} else {
			resp.Cache = "ok"
		}
	}

	return c.JSON(resp)
}
