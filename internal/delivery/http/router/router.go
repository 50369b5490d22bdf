// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kumoart/internal/delivery/http/middleware"
	"kumoart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler    *handler.PageHandler
	CatalogHandler *handler.CatalogHandler
	EventHandler   *handler.EventHandler
	ContactHandler *handler.ContactHandler
	AuthHandler    *handler.AuthHandler
	HealthHandler  *handler.HealthHandler

	RequestIDMiddleware *middleware.RequestIDMiddleware
	LocaleMiddleware    *middleware.LocaleMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler    *handler.PageHandler
	catalogHandler *handler.CatalogHandler
	eventHandler   *handler.EventHandler
	contactHandler *handler.ContactHandler
	authHandler    *handler.AuthHandler
	healthHandler  *handler.HealthHandler

	requestIDMiddleware *middleware.RequestIDMiddleware
	localeMiddleware    *middleware.LocaleMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:         params.PageHandler,
		catalogHandler:      params.CatalogHandler,
		eventHandler:        params.EventHandler,
		contactHandler:      params.ContactHandler,
		authHandler:         params.AuthHandler,
		healthHandler:       params.HealthHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		localeMiddleware:    params.LocaleMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.localeMiddleware.Process)

	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Static assets (stylesheet, images)
	e.Static("/assets", "assets")
	e.Static("/images", "images")

	// HTML pages
	e.GET("/", r.pageHandler.Home)
	e.GET("/produk", r.pageHandler.Products)
	e.GET("/produk/:slug", r.pageHandler.ProductDetail)
	e.GET("/event", r.pageHandler.Events)
	e.GET("/event/:slug", r.pageHandler.EventDetail)
	e.GET("/lang/:code", r.pageHandler.SwitchLocale)

	// JSON API
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/products", r.catalogHandler.ListProducts)
		apiGroup.GET("/products/:slug", r.catalogHandler.GetProduct)
		apiGroup.GET("/categories", r.catalogHandler.ListCategories)

		apiGroup.GET("/events", r.eventHandler.ListEvents)
		apiGroup.GET("/events/:slug", r.eventHandler.GetEvent)

		apiGroup.GET("/contact/link", r.contactHandler.BuildLink)
		apiGroup.POST("/contact/cart", r.contactHandler.BuildCartLink)
		apiGroup.GET("/contact/inquiry", r.contactHandler.BuildInquiryLink)
		apiGroup.GET("/contact/qr", r.contactHandler.ContactQR)

		// CMS OAuth popup routes
		apiGroup.GET("/auth", r.authHandler.Authorize)
		apiGroup.GET("/callback", r.authHandler.Callback)
	}

	// Unknown routes render the localized 404 page.
	e.RouteNotFound("/*", r.pageHandler.NotFound)
}
