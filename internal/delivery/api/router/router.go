// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	ProductHandler  *handler.ProductHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Recorder
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	productHandler  *handler.ProductHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Recorder
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		productHandler:  params.ProductHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Public catalog and gateway redirect
	e.GET("/products/:id", r.productHandler.GetProduct)
	e.GET("/media/*", r.productHandler.Media)
	e.GET("/payment/callback", r.paymentHandler.Callback)

	e.POST("/checkout", r.checkoutHandler.PlaceOrder, r.authMiddleware.Authenticate)

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		ordersGroup.POST("/:id/payment", r.orderHandler.StartPayment)
		ordersGroup.GET("/:id/payment/qr", r.orderHandler.PaymentQR)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/settings/shipping", r.adminHandler.GetShippingSettings)
		adminGroup.PUT("/settings/shipping", r.adminHandler.UpdateShippingSettings)
		adminGroup.PUT("/products/:id/pricing", r.adminHandler.UpdateProductPricing)
		adminGroup.PUT("/products/:id/stock", r.adminHandler.SetProductStock)
		adminGroup.PUT("/product-images/:id", r.adminHandler.ReplaceProductImage)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
	}
}
