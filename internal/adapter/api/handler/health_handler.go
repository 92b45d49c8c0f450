package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"blooddonor/pkg/errors"
	"blooddonor/pkg/logger"
	"blooddonor/pkg/response"
)

// Pinger is satisfied by the user repository of either store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.WithError(err).Warn("Health check: store unreachable")
		return response.Error(c, errors.New(errors.CodeUnavailable, "Database connection failed", http.StatusServiceUnavailable, err))
	}

	return response.Success(c, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}
