package repository

import (
	"context"

	"github.com/delwerhossain/e-com/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByIDOrEmail applies the viewer's soft-delete visibility and strips
	// role-restricted fields from the result.
	GetByIDOrEmail(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.User, error)
	// GetCredentials loads a user by email including the password hash.
	// Login is the only caller.
	GetCredentials(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, query AccountQuery, sort Sort, page Page, viewer entity.Viewer) ([]*entity.User, int64, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*entity.User, error)
	SoftDelete(ctx context.Context, id string) (*entity.User, error)
	SetLastLogin(ctx context.Context, id string, login entity.LastLogin) error
}
