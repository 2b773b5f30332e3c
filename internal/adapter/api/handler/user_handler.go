package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/response"
)

// accountListParams is the shared admin-search surface; vendor endpoints add
// their profile-specific parameters on top.
var accountListParams = []string{
	"email", "phoneNumber", "name", "isActive", "isDelete",
	"createdFrom", "createdTo", "lastLoginFrom", "lastLoginTo",
	"sortBy", "sortOrder", "page", "limit",
}

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type registerUserRequest struct {
	Email    string              `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required,min=8"`
	Profile  *entity.UserProfile `json:"profile"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Register(c.Request().Context(), usecase.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.Profile,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

// Get serves both the single lookup (?id= or ?email=) and the admin search:
// a request with neither id nor email is a list.
func (h *UserHandler) Get(c echo.Context) error {
	params, err := queryParams(c, append([]string{"id"}, accountListParams...)...)
	if err != nil {
		return response.Error(c, err)
	}

	if id, email := params["id"], params["email"]; id != "" || (email != "" && len(params) == 1) {
		user, err := h.userUseCase.GetUser(c.Request().Context(), id, email, viewer(c))
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, user)
	}

	page := pageFromRequest(c)
	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), params, page, viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, page.Number, page.Limit)
}

func (h *UserHandler) Update(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateUser(c.Request().Context(), c.Param("id"), payload, viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.userUseCase.DeleteUser(c.Request().Context(), c.Param("id"), viewer(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
