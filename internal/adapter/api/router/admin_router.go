package router

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
	"github.com/delwerhossain/e-com/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admins := e.Group("/v1/admins")
	admins.Use(authMiddleware.Authenticate)
	admins.Use(adminMiddleware.AdminOnly)
	admins.GET("", adminHandler.Get)
	admins.PATCH("/:id", adminHandler.Update)

	// Creation, deletion and the super subroutes are superAdmin territory.
	super := e.Group("/v1/admins")
	super.Use(authMiddleware.Authenticate)
	super.Use(adminMiddleware.SuperAdminOnly)
	super.POST("", adminHandler.Create)
	super.DELETE("/:id", adminHandler.Delete)
	super.GET("/super/:id", adminHandler.GetByID)
	super.PATCH("/super/:id", adminHandler.Update)
}
