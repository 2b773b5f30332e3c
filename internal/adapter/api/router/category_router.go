package router

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
	"github.com/delwerhossain/e-com/internal/adapter/api/middleware"
)

func SetupCategoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	categoryHandler := handler.GetCategoryHandler()
	subCategoryHandler := handler.GetSubCategoryHandler()

	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.List, authMiddleware.OptionalAuthenticate)
	categories.GET("/:id", categoryHandler.Get, authMiddleware.OptionalAuthenticate)

	categoriesAdmin := e.Group("/v1/categories")
	categoriesAdmin.Use(authMiddleware.Authenticate)
	categoriesAdmin.Use(adminMiddleware.AdminOnly)
	categoriesAdmin.POST("", categoryHandler.Create)
	categoriesAdmin.PATCH("/:id", categoryHandler.Update)
	categoriesAdmin.PATCH("/status/:id", categoryHandler.ToggleStatus)
	categoriesAdmin.DELETE("/:id", categoryHandler.Delete)

	subCategories := e.Group("/v1/subcategories")
	subCategories.GET("", subCategoryHandler.List, authMiddleware.OptionalAuthenticate)
	subCategories.GET("/:id", subCategoryHandler.Get, authMiddleware.OptionalAuthenticate)

	subCategoriesAdmin := e.Group("/v1/subcategories")
	subCategoriesAdmin.Use(authMiddleware.Authenticate)
	subCategoriesAdmin.Use(adminMiddleware.AdminOnly)
	subCategoriesAdmin.POST("", subCategoryHandler.Create)
	subCategoriesAdmin.PATCH("/:id", subCategoryHandler.Update)
	subCategoriesAdmin.PATCH("/status/:id", subCategoryHandler.ToggleStatus)
	subCategoriesAdmin.DELETE("/:id", subCategoryHandler.Delete)
}
