// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shipway/internal/delivery/http/middleware"
	"shipway/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeliveryHandler *handler.DeliveryHandler
	RuleHandler     *handler.RuleHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deliveryHandler *handler.DeliveryHandler
	ruleHandler     *handler.RuleHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deliveryHandler: params.DeliveryHandler,
		ruleHandler:     params.RuleHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Storefront routes, consumed cross-origin by the widget
	api := e.Group("/api")
	{
		api.GET("/delivery-info", r.deliveryHandler.GetDeliveryInfo)
		api.POST("/delivery-info", r.deliveryHandler.PostDeliveryInfo)
		api.GET("/delivery-country-info", r.deliveryHandler.GetCountryInfo)
	}

	// Admin routes that require a valid session token
	admin := e.Group("/api")
	admin.Use(r.authMiddleware.Authenticate)
	{
		admin.POST("/rules", r.ruleHandler.SaveRule)
		admin.GET("/rules", r.ruleHandler.ListRules)
		admin.GET("/catalog", r.ruleHandler.GetCatalog)
		admin.POST("/catalog/search", r.ruleHandler.SearchCatalog)
	}
}
