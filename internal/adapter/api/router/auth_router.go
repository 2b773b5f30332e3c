package router

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login)
}
