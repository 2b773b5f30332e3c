package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/delwerhossain/e-com/internal/domain/entity"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ViewerFromContext(c).Privileged() {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

func (m *AdminMiddleware) SuperAdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ViewerFromContext(c).Role != entity.RoleSuperAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Super admin access required")
		}
		return next(c)
	}
}
