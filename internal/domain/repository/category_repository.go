package repository

import (
	"context"

	"github.com/delwerhossain/e-com/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *entity.SubCategory) error
	GetByID(ctx context.Context, id string) (*entity.SubCategory, error)
	List(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.SubCategory, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*entity.SubCategory, error)
	Delete(ctx context.Context, id string) error
}
