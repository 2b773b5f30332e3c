package router

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
	"github.com/delwerhossain/e-com/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.POST("", userHandler.Register)
	users.GET("", userHandler.Get, authMiddleware.OptionalAuthenticate)

	authed := e.Group("/v1/users")
	authed.Use(authMiddleware.Authenticate)
	authed.PATCH("/:id", userHandler.Update)
	authed.DELETE("/:id", userHandler.Delete)
}
