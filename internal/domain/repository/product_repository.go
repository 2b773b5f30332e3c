package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, query ProductQuery, sort Sort, page Page) ([]*entity.Product, int64, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Product, error)
	// Delete physically removes the product, matching the catalog's
	// hard-delete behavior (accounts are the only soft-deleted entities).
	Delete(ctx context.Context, id string) error
	// SyncRatings writes the recomputed rating summary and the full set of
	// review references in a single document update.
	SyncRatings(ctx context.Context, id string, ratings entity.ProductRatings, reviewIDs []primitive.ObjectID) error
}
