package repository

import (
	"context"

	"github.com/delwerhossain/e-com/internal/domain/entity"
)

// ReviewFilter narrows review listings. Nil fields match everything.
type ReviewFilter struct {
	ProductID string
	IsActive  *bool
	IsBest    *bool
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Review, error)
	// Delete physically removes the review. This asymmetry with the
	// soft-deleted account entities is intentional.
	Delete(ctx context.Context, id string) error
}
