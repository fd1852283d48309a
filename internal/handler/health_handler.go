package handler

import (
	"context"
	"time"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler builds the readiness check. cache may be nil when Redis
// is not configured.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health pings the database and Redis.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	body := fiber.Map{"status": "ok", "db": "up", "redis": "disabled"}

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Health check: database ping failed", zap.Error(err))
		body["db"] = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache != nil {
		body["redis"] = "up"
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Error("Health check: redis ping failed", zap.Error(err))
			body["redis"] = "down"
			status = fiber.StatusServiceUnavailable
		}
	}
	if status != fiber.StatusOK {
		body["status"] = "degraded"
	}
	return c.Status(status).JSON(body)
}
