package router

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
	"github.com/delwerhossain/e-com/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.GET("/best", reviewHandler.ListBest)
	reviews.GET("/product/:productId", reviewHandler.ListByProduct)
	reviews.GET("/:id", reviewHandler.Get)

	authed := e.Group("/v1/reviews")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", reviewHandler.Create)
	authed.PATCH("/:id", reviewHandler.Update)
	authed.DELETE("/:id", reviewHandler.Delete)

	admin := e.Group("/v1/reviews")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/inactive/:productId", reviewHandler.ListInactiveByProduct)
	admin.PATCH("/status/:id", reviewHandler.ToggleStatus)
}
