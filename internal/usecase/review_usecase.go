package usecase

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
	"github.com/delwerhossain/e-com/pkg/logger"
)

// ReviewUseCase owns the rating aggregation: every review mutation recomputes
// the product's rating summary from scratch over its active reviews. The
// recompute runs under a per-product lock so concurrent mutations cannot
// overwrite each other's contribution to the cached aggregate.
type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	locks       *keyedMutex
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		locks:       newKeyedMutex(),
	}
}

type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("rating must be between 1 and 5", nil)
	}

	reviewerOID, err := objectIDFromHex(reviewerID)
	if err != nil {
		return nil, err
	}

	// The product must exist before anything is written.
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(product.ID.Hex())
	defer unlock()

	review := &entity.Review{
		ReviewerID: reviewerOID,
		ProductID:  product.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		IsActive:   true,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.syncProductRatings(ctx, product.ID.Hex()); err != nil {
		// Roll back rather than leave a review whose effect never reached
		// the product aggregate.
		if delErr := uc.reviewRepo.Delete(ctx, review.ID.Hex()); delErr != nil {
			logger.Error("rollback of review %s failed: %v", review.ID.Hex(), delErr)
		}
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	return uc.reviewRepo.GetByID(ctx, id)
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx, repository.ReviewFilter{})
}

func (uc *ReviewUseCase) ListBestReviews(ctx context.Context) ([]*entity.Review, error) {
	best := true
	active := true
	return uc.reviewRepo.List(ctx, repository.ReviewFilter{IsBest: &best, IsActive: &active})
}

// ListProductReviews returns a product's reviews, active ones only unless
// the caller asks otherwise.
func (uc *ReviewUseCase) ListProductReviews(ctx context.Context, productID string, active bool) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx, repository.ReviewFilter{ProductID: productID, IsActive: &active})
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
	IsBest  *bool
}

func (uc *ReviewUseCase) UpdateReview(ctx context.Context, id string, input UpdateReviewInput, viewer entity.Viewer) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !viewer.Privileged() && review.ReviewerID.Hex() != viewer.ID {
		return nil, errors.Forbidden("You can only update your own reviews", nil)
	}
	if input.IsBest != nil && !viewer.Privileged() {
		return nil, errors.PermissionDenied("isBest")
	}

	set := map[string]interface{}{}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, errors.Validation("rating must be between 1 and 5", nil)
		}
		set["rating"] = *input.Rating
	}
	if input.Comment != nil {
		set["comment"] = *input.Comment
	}
	if input.IsBest != nil {
		set["isBest"] = *input.IsBest
	}
	if len(set) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}

	unlock := uc.locks.Lock(review.ProductID.Hex())
	defer unlock()

	updated, err := uc.reviewRepo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}

	if err := uc.syncProductRatings(ctx, review.ProductID.Hex()); err != nil {
		return nil, err
	}
	return updated, nil
}

// SetReviewActive toggles visibility and re-runs the aggregation, so a
// deactivated review stops counting immediately.
func (uc *ReviewUseCase) SetReviewActive(ctx context.Context, id string, active bool) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(review.ProductID.Hex())
	defer unlock()

	updated, err := uc.reviewRepo.Update(ctx, id, map[string]interface{}{"isActive": active})
	if err != nil {
		return nil, err
	}

	if err := uc.syncProductRatings(ctx, review.ProductID.Hex()); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id string, viewer entity.Viewer) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !viewer.Privileged() && review.ReviewerID.Hex() != viewer.ID {
		return errors.Forbidden("You can only delete your own reviews", nil)
	}

	unlock := uc.locks.Lock(review.ProductID.Hex())
	defer unlock()

	if err := uc.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	return uc.syncProductRatings(ctx, review.ProductID.Hex())
}

// syncProductRatings recomputes the product's rating summary from scratch.
// Recompute-over-active-reviews is the contract; there is no incremental
// path, which keeps the cache self-healing against drift. Callers must hold
// the product's lock.
func (uc *ReviewUseCase) syncProductRatings(ctx context.Context, productID string) error {
	reviews, err := uc.reviewRepo.List(ctx, repository.ReviewFilter{ProductID: productID})
	if err != nil {
		return err
	}

	var sum, count int
	reviewIDs := make([]primitive.ObjectID, 0, len(reviews))
	for _, review := range reviews {
		reviewIDs = append(reviewIDs, review.ID)
		if review.CountsTowardRating() {
			sum += review.Rating
			count++
		}
	}

	ratings := entity.ProductRatings{ReviewsCount: count}
	if count > 0 {
		ratings.AverageRating = math.Round(float64(sum)/float64(count)*10) / 10
	}

	return uc.productRepo.SyncRatings(ctx, productID, ratings, reviewIDs)
}
