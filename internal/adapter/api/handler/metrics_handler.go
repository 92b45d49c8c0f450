package handler

import (
	"github.com/labstack/echo/v4"

	"blooddonor/internal/infrastructure/metrics"
)

type MetricsHandler struct {
	recorder *metrics.Recorder
}

func NewMetricsHandler(recorder *metrics.Recorder) *MetricsHandler {
	return &MetricsHandler{
		recorder: recorder,
	}
}

func (h *MetricsHandler) Serve(c echo.Context) error {
	h.recorder.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
