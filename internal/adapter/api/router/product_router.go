package router

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
	"github.com/delwerhossain/e-com/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.List)
	products.GET("/best", productHandler.ListBest)
	products.GET("/featured", productHandler.ListFeatured)
	products.GET("/vendor/:id", productHandler.ListByVendor)
	products.GET("/:id", productHandler.Get)

	authed := e.Group("/v1/products")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", productHandler.Create)
	authed.PATCH("/:id", productHandler.Update)

	admin := e.Group("/v1/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/inactive", productHandler.ListInactive)
	admin.PATCH("/status/:id", productHandler.ToggleStatus)
	admin.DELETE("/:id", productHandler.Delete)
}
