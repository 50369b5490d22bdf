package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kumoart/internal/delivery/http/response"
	"kumoart/internal/usecase"
)

// HealthHandler reports service liveness and catalog counts.
type HealthHandler struct {
	catalog usecase.CatalogUsecase
	events  usecase.EventUsecase
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(catalog usecase.CatalogUsecase, events usecase.EventUsecase) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		events:  events,
	}
}

// HealthCheck returns service status together with loaded content counts,
// which makes a silently empty catalog visible to monitoring.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":       "ok",
		"products":     len(h.catalog.Search(usecase.ProductFilter{})),
		"activeEvents": len(h.events.Active()),
	}, "Service is healthy")
}
