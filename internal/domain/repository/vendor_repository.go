package repository

import (
	"context"

	"github.com/delwerhossain/e-com/internal/domain/entity"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByIDOrEmail(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.Vendor, error)
	GetCredentials(ctx context.Context, email string) (*entity.Vendor, error)
	List(ctx context.Context, query AccountQuery, sort Sort, page Page, viewer entity.Viewer) ([]*entity.Vendor, int64, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Vendor, error)
	SoftDelete(ctx context.Context, id string) (*entity.Vendor, error)
	SetLastLogin(ctx context.Context, id string, login entity.LastLogin) error
}
