package router

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
	"github.com/delwerhossain/e-com/internal/adapter/api/middleware"
)

func SetupVendorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	vendorHandler := handler.GetVendorHandler()

	vendors := e.Group("/v1/vendors")
	vendors.POST("", vendorHandler.Register)
	vendors.GET("", vendorHandler.Get, authMiddleware.OptionalAuthenticate)

	authed := e.Group("/v1/vendors")
	authed.Use(authMiddleware.Authenticate)
	authed.PATCH("/:id", vendorHandler.Update)
	authed.DELETE("/:id", vendorHandler.Delete)
}
