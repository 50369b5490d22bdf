package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "kumoart/internal/domain/errors"
	"kumoart/internal/domain/repository"
	"kumoart/internal/errors"
	"kumoart/internal/usecase"
)

// CatalogHandler serves the product catalog JSON API.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns one filtered catalog page.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var filter usecase.ProductFilter
	if err := c.Bind(&filter); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, h.uc.Browse(filter, pageParam(c)))
}

// GetProduct returns a single product by slug.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, product)
}

// ListCategories returns the distinct category labels in catalog order.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Categories())
}
