package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	AccountType string `json:"accountType" validate:"omitempty,oneof=user vendor admin"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), usecase.LoginInput{
		Email:       req.Email,
		Password:    req.Password,
		AccountType: req.AccountType,
	}, c.RealIP())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
