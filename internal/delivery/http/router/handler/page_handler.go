// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	deliverycontext "kumoart/internal/delivery/context"
	"kumoart/internal/delivery/http/middleware"
	"kumoart/internal/delivery/http/view"
	"kumoart/internal/errors"
	"kumoart/internal/i18n"
	"kumoart/internal/usecase"
)

// PageHandler renders the HTML pages of the site.
type PageHandler struct {
	builder *view.Builder
	logger  *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(builder *view.Builder, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		builder: builder,
		logger:  logger,
	}
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	locale := deliverycontext.GetLocale(c)

	return c.Render(http.StatusOK, "home", h.builder.Home(locale))
}

// Products renders the searchable catalog page.
func (h *PageHandler) Products(c echo.Context) error {
	locale := deliverycontext.GetLocale(c)

	var filter usecase.ProductFilter
	if err := c.Bind(&filter); err != nil {
		// A malformed filter falls back to the unfiltered catalog.
		filter = usecase.ProductFilter{}
	}

	return c.Render(http.StatusOK, "products", h.builder.Catalog(locale, filter, pageParam(c)))
}

// ProductDetail renders a single product page.
func (h *PageHandler) ProductDetail(c echo.Context) error {
	locale := deliverycontext.GetLocale(c)

	data, err := h.builder.ProductDetail(locale, c.Param("slug"))
	if err != nil {
		return h.NotFound(c)
	}

	return c.Render(http.StatusOK, "product_detail", data)
}

// Events renders the event listing page.
func (h *PageHandler) Events(c echo.Context) error {
	locale := deliverycontext.GetLocale(c)

	return c.Render(http.StatusOK, "events", h.builder.EventList(locale))
}

// EventDetail renders a single event page.
func (h *PageHandler) EventDetail(c echo.Context) error {
	locale := deliverycontext.GetLocale(c)

	data, err := h.builder.EventDetail(locale, c.Param("slug"))
	if err != nil {
		return h.NotFound(c)
	}

	return c.Render(http.StatusOK, "event_detail", data)
}

// NotFound renders the 404 page. It is also the fallback for unknown routes.
func (h *PageHandler) NotFound(c echo.Context) error {
	locale := deliverycontext.GetLocale(c)

	return c.Render(http.StatusNotFound, "notfound", h.builder.NotFound(locale))
}

// SwitchLocale persists the requested locale and returns to the referring
// page. An unknown code keeps the current locale.
func (h *PageHandler) SwitchLocale(c echo.Context) error {
	if locale, ok := i18n.ParseLocale(c.Param("code")); ok {
		middleware.PersistLocale(c, locale)
	} else {
		h.logger.Warn("ignoring unknown locale code", slog.String("code", c.Param("code")))
	}

	target := c.Request().Referer()
	if target == "" {
		target = "/"
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, target))
}

// pageParam reads the page query parameter, defaulting to the first page.
// Out-of-range values are clamped downstream.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}

	return page
}
