package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type createAdminRequest struct {
	Email       string               `json:"email" validate:"required,email"`
	Password    string               `json:"password" validate:"required,min=8"`
	Profile     *entity.AdminProfile `json:"profile"`
	Permissions []string             `json:"permissions"`
}

func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminUseCase.CreateAdmin(c.Request().Context(), usecase.CreateAdminInput{
		Email:       req.Email,
		Password:    req.Password,
		Profile:     req.Profile,
		Permissions: req.Permissions,
	}, viewer(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, admin)
}

func (h *AdminHandler) Get(c echo.Context) error {
	params, err := queryParams(c, append([]string{"id"}, accountListParams...)...)
	if err != nil {
		return response.Error(c, err)
	}

	if id, email := params["id"], params["email"]; id != "" || (email != "" && len(params) == 1) {
		admin, err := h.adminUseCase.GetAdmin(c.Request().Context(), id, email, viewer(c))
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, admin)
	}

	page := pageFromRequest(c)
	admins, total, err := h.adminUseCase.ListAdmins(c.Request().Context(), params, page, viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, admins, total, page.Number, page.Limit)
}

// GetByID backs the superAdmin subroutes, where the id arrives as a path
// parameter instead of a query parameter.
func (h *AdminHandler) GetByID(c echo.Context) error {
	admin, err := h.adminUseCase.GetAdmin(c.Request().Context(), c.Param("id"), "", viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, admin)
}

func (h *AdminHandler) Update(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminUseCase.UpdateAdmin(c.Request().Context(), c.Param("id"), payload, viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, admin)
}

func (h *AdminHandler) Delete(c echo.Context) error {
	admin, err := h.adminUseCase.DeleteAdmin(c.Request().Context(), c.Param("id"), viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, admin)
}
