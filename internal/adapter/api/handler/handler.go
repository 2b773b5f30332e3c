package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/adapter/api/middleware"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/errors"
	"github.com/delwerhossain/e-com/pkg/utils"
)

var (
	authHandler        *AuthHandler
	userHandler        *UserHandler
	vendorHandler      *VendorHandler
	adminHandler       *AdminHandler
	productHandler     *ProductHandler
	reviewHandler      *ReviewHandler
	categoryHandler    *CategoryHandler
	subCategoryHandler *SubCategoryHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	vendorUseCase *usecase.VendorUseCase,
	adminUseCase *usecase.AdminUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	categoryUseCase *usecase.CategoryUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	vendorHandler = NewVendorHandler(vendorUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	productHandler = NewProductHandler(productUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	subCategoryHandler = NewSubCategoryHandler(categoryUseCase)
}

func GetAuthHandler() *AuthHandler { return authHandler }

func GetUserHandler() *UserHandler { return userHandler }

func GetVendorHandler() *VendorHandler { return vendorHandler }

func GetAdminHandler() *AdminHandler { return adminHandler }

func GetProductHandler() *ProductHandler { return productHandler }

func GetReviewHandler() *ReviewHandler { return reviewHandler }

func GetCategoryHandler() *CategoryHandler { return categoryHandler }

func GetSubCategoryHandler() *SubCategoryHandler { return subCategoryHandler }

// queryParams checks the query string against the endpoint's allowlist and
// returns the parameters that were actually sent. Unknown parameters are
// rejected rather than silently ignored.
func queryParams(c echo.Context, allowed ...string) (map[string]string, error) {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	params := make(map[string]string)
	for name, values := range c.QueryParams() {
		if _, ok := allowedSet[name]; !ok {
			return nil, errors.Validation("Unknown query parameter: "+name, nil)
		}
		if len(values) > 0 && values[0] != "" {
			params[name] = values[0]
		}
	}
	return params, nil
}

func pageFromRequest(c echo.Context) repository.Page {
	p := utils.GetPaginationParams(c)
	return repository.Page{Number: p.Page, Limit: p.Limit}
}

var viewer = middleware.ViewerFromContext
