package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/response"
)

var vendorListParams = append([]string{
	"businessName", "taxId", "contactEmail", "publicPhone", "businessCategory",
	"country", "city", "state", "hasSocialMedia", "hasWebsite", "hasAvatar",
	"ratingsFrom", "ratingsTo", "reviewCountFrom", "reviewCountTo",
}, accountListParams...)

type VendorHandler struct {
	vendorUseCase *usecase.VendorUseCase
}

func NewVendorHandler(vendorUseCase *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{
		vendorUseCase: vendorUseCase,
	}
}

type registerVendorRequest struct {
	Email       string                `json:"email" validate:"required,email"`
	Password    string                `json:"password" validate:"required,min=8"`
	PhoneNumber string                `json:"phoneNumber"`
	Profile     *entity.VendorProfile `json:"profile" validate:"required"`
}

func (h *VendorHandler) Register(c echo.Context) error {
	var req registerVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vendor, err := h.vendorUseCase.Register(c.Request().Context(), usecase.RegisterVendorInput{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Profile:     req.Profile,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, vendor)
}

func (h *VendorHandler) Get(c echo.Context) error {
	params, err := queryParams(c, append([]string{"id"}, vendorListParams...)...)
	if err != nil {
		return response.Error(c, err)
	}

	if id, email := params["id"], params["email"]; id != "" || (email != "" && len(params) == 1) {
		vendor, err := h.vendorUseCase.GetVendor(c.Request().Context(), id, email, viewer(c))
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, vendor)
	}

	page := pageFromRequest(c)
	vendors, total, err := h.vendorUseCase.ListVendors(c.Request().Context(), params, page, viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, vendors, total, page.Number, page.Limit)
}

func (h *VendorHandler) Update(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, err)
	}

	vendor, err := h.vendorUseCase.UpdateVendor(c.Request().Context(), c.Param("id"), payload, viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, vendor)
}

func (h *VendorHandler) Delete(c echo.Context) error {
	vendor, err := h.vendorUseCase.DeleteVendor(c.Request().Context(), c.Param("id"), viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, vendor)
}
