package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/response"
)

var productListParams = []string{
	"searchTerm", "isActive", "isFeatured", "isBestProduct", "outOfStock",
	"categoryId", "subCategoryId", "vendorId", "priceFrom", "priceTo",
	"createdFrom", "createdTo", "sort", "sortBy", "sortOrder", "page", "limit",
}

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	Price              float64  `json:"price" validate:"required,gt=0"`
	Quantity           int      `json:"quantity" validate:"gte=0"`
	VendorID           string   `json:"vendorId" validate:"required"`
	CategoryID         string   `json:"categoryId"`
	SubCategoryID      string   `json:"subCategoryId"`
	Images             []string `json:"images"`
	Color              string   `json:"color"`
	Size               string   `json:"size"`
	Weight             string   `json:"weight"`
	IsFeatured         bool     `json:"isFeatured"`
	DiscountPercentage float64  `json:"discountPercentage" validate:"gte=0,lte=100"`
	Delivery           string   `json:"delivery" validate:"omitempty,oneof=Free Pay"`
	DeliveryCharge     float64  `json:"deliveryCharge" validate:"gte=0"`
	MaxOrderQuantity   int      `json:"maxOrderQuantity" validate:"gte=0"`
	RestockDate        string   `json:"restockDate"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Quantity:           req.Quantity,
		VendorID:           req.VendorID,
		CategoryID:         req.CategoryID,
		SubCategoryID:      req.SubCategoryID,
		Images:             req.Images,
		Color:              req.Color,
		Size:               req.Size,
		Weight:             req.Weight,
		IsFeatured:         req.IsFeatured,
		DiscountPercentage: req.DiscountPercentage,
		Delivery:           req.Delivery,
		DeliveryCharge:     req.DeliveryCharge,
		MaxOrderQuantity:   req.MaxOrderQuantity,
		RestockDate:        req.RestockDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) List(c echo.Context) error {
	params, err := queryParams(c, productListParams...)
	if err != nil {
		return response.Error(c, err)
	}

	page := pageFromRequest(c)
	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), params, page)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, products, total, page.Number, page.Limit)
}

func (h *ProductHandler) ListBest(c echo.Context) error {
	return h.listByFlag(c, "isBestProduct", true)
}

func (h *ProductHandler) ListFeatured(c echo.Context) error {
	return h.listByFlag(c, "isFeatured", true)
}

func (h *ProductHandler) ListInactive(c echo.Context) error {
	return h.listByFlag(c, "isActive", false)
}

func (h *ProductHandler) listByFlag(c echo.Context, flag string, value bool) error {
	if _, err := queryParams(c, "page", "limit"); err != nil {
		return response.Error(c, err)
	}

	page := pageFromRequest(c)
	products, total, err := h.productUseCase.ListByFlag(c.Request().Context(), flag, value, page)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, products, total, page.Number, page.Limit)
}

func (h *ProductHandler) ListByVendor(c echo.Context) error {
	if _, err := queryParams(c, "page", "limit"); err != nil {
		return response.Error(c, err)
	}

	page := pageFromRequest(c)
	products, total, err := h.productUseCase.ListVendorProducts(c.Request().Context(), c.Param("id"), page)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, products, total, page.Number, page.Limit)
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, reviews, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"product": product,
		"reviews": reviews,
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) ToggleStatus(c echo.Context) error {
	product, err := h.productUseCase.ToggleProductStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}
