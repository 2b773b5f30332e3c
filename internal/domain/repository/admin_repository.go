package repository

import (
	"context"

	"github.com/delwerhossain/e-com/internal/domain/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	// GetByIDOrEmail hides superAdmin records from non-superAdmin viewers:
	// such a lookup fails with a not-found, never a redacted record.
	GetByIDOrEmail(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.Admin, error)
	GetCredentials(ctx context.Context, email string) (*entity.Admin, error)
	// List excludes superAdmin rows (and their contribution to the total)
	// for non-superAdmin viewers.
	List(ctx context.Context, query AccountQuery, sort Sort, page Page, viewer entity.Viewer) ([]*entity.Admin, int64, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Admin, error)
	SoftDelete(ctx context.Context, id string) (*entity.Admin, error)
	SetLastLogin(ctx context.Context, id string, login entity.LastLogin) error
}
