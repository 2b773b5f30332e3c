package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	params, err := queryParams(c, "includeInactive")
	if err != nil {
		return response.Error(c, err)
	}

	categories, err := h.categoryUseCase.ListCategories(c.Request().Context(), params["includeInactive"] == "true", viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.categoryUseCase.GetCategory(c.Request().Context(), c.Param("id"), viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) ToggleStatus(c echo.Context) error {
	category, err := h.categoryUseCase.ToggleCategoryStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryUseCase.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

type SubCategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewSubCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

type subCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	CategoryID  string `json:"categoryId" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

func (h *SubCategoryHandler) Create(c echo.Context) error {
	var req subCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	subCategory, err := h.categoryUseCase.CreateSubCategory(c.Request().Context(), usecase.SubCategoryInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, subCategory)
}

func (h *SubCategoryHandler) List(c echo.Context) error {
	params, err := queryParams(c, "categoryId", "includeInactive")
	if err != nil {
		return response.Error(c, err)
	}

	subCategories, err := h.categoryUseCase.ListSubCategories(c.Request().Context(), params["categoryId"], params["includeInactive"] == "true", viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, subCategories)
}

func (h *SubCategoryHandler) Get(c echo.Context) error {
	subCategory, err := h.categoryUseCase.GetSubCategory(c.Request().Context(), c.Param("id"), viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, subCategory)
}

func (h *SubCategoryHandler) Update(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, err)
	}

	subCategory, err := h.categoryUseCase.UpdateSubCategory(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, subCategory)
}

func (h *SubCategoryHandler) ToggleStatus(c echo.Context) error {
	subCategory, err := h.categoryUseCase.ToggleSubCategoryStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, subCategory)
}

func (h *SubCategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryUseCase.DeleteSubCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}
