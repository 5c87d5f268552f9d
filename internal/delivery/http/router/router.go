// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodbridge/config"
	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/router/handler"
	"foodbridge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	UserHandler     *handler.UserHandler
	FoodHandler     *handler.FoodHandler
	DeliveryHandler *handler.DeliveryHandler
	MapsHandler     *handler.MapsHandler
	DeviceHandler   *handler.DeviceHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	userHandler     *handler.UserHandler
	foodHandler     *handler.FoodHandler
	deliveryHandler *handler.DeliveryHandler
	mapsHandler     *handler.MapsHandler
	deviceHandler   *handler.DeviceHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		userHandler:     params.UserHandler,
		foodHandler:     params.FoodHandler,
		deliveryHandler: params.DeliveryHandler,
		mapsHandler:     params.MapsHandler,
		deviceHandler:   params.DeviceHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/donor", r.userHandler.RegisterDonor)
		authGroup.POST("/register/ngo", r.userHandler.RegisterNgo)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Maps proxy routes require authentication but no particular role
	mapsGroup := e.Group("/maps")
	mapsGroup.Use(r.authMiddleware.Authenticate)
	{
		mapsGroup.GET("/geocode", r.mapsHandler.Geocode)
		mapsGroup.POST("/travel-info", r.mapsHandler.TravelInfo)
	}

	// Donor routes require authentication and the "donor" role
	foodGroup := e.Group("/food-items")
	foodGroup.Use(r.authMiddleware.Authenticate)
	{
		foodGroup.GET("/:id", r.foodHandler.GetFoodItem)
		foodGroup.GET("/:id/image", r.foodHandler.GetCoverImage)

		donorOnly := r.authMiddleware.RequireRole(string(entity.RoleDonor))
		foodGroup.POST("", r.foodHandler.PostFoodItem, donorOnly)
		foodGroup.GET("/mine", r.foodHandler.GetMyFoodItems, donorOnly)
	}

	// Delivery tracking routes require authentication and the "ngo" role
	deliveryGroup := e.Group("/deliveries")
	deliveryGroup.Use(r.authMiddleware.Authenticate)
	deliveryGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleNgo)))
	{
		deliveryGroup.POST("", r.deliveryHandler.StartDelivery)
		deliveryGroup.PATCH("/:id/status", r.deliveryHandler.AdvanceDelivery)
		deliveryGroup.GET("/history", r.deliveryHandler.GetHistory)
		deliveryGroup.GET("/:id/qr", r.deliveryHandler.GetPickupQR)
	}

	// Device routes require authentication and the "ngo" role
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	deviceGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleNgo)))
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.DELETE("/:deviceId", r.deviceHandler.DeactivateDevice)
	}

	// Middleware validation endpoints, disabled unless explicitly enabled
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
