package router

import (
	"blooddonor/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo) {
	e.GET("/health", handler.GetHealthHandler().CheckHealth)
	e.GET("/metrics", handler.GetMetricsHandler().Serve)
}
