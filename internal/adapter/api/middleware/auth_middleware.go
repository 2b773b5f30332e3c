package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/usecase"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// Authenticate requires a valid bearer token and stores the caller's id and
// role on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		viewer, err := m.authUseCase.ParseToken(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", viewer.ID)
		c.Set("role", viewer.Role)

		return next(c)
	}
}

// OptionalAuthenticate parses a bearer token when one is present but lets
// anonymous requests through. Public endpoints use it so privileged callers
// get their wider visibility.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if viewer, err := m.authUseCase.ParseToken(parts[1]); err == nil {
					c.Set("uid", viewer.ID)
					c.Set("role", viewer.Role)
				}
			}
		}
		return next(c)
	}
}

// ViewerFromContext rebuilds the caller identity set by Authenticate. An
// unauthenticated request yields the anonymous viewer.
func ViewerFromContext(c echo.Context) entity.Viewer {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	return entity.Viewer{ID: uid, Role: role}
}
