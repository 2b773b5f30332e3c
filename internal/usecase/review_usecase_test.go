package usecase

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/pkg/errors"
)

func newReviewFixture() (*ReviewUseCase, *fakeReviewRepo, *fakeProductRepo, *entity.Product) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo()
	product := productRepo.seed(&entity.Product{Name: "Desk Lamp", Price: 25, IsActive: true})
	return NewReviewUseCase(reviewRepo, productRepo), reviewRepo, productRepo, product
}

func createReview(t *testing.T, uc *ReviewUseCase, productID string, rating int) *entity.Review {
	t.Helper()
	review, err := uc.CreateReview(context.Background(), primitive.NewObjectID().Hex(), CreateReviewInput{
		ProductID: productID,
		Rating:    rating,
		Comment:   "solid product, works as described",
	})
	require.NoError(t, err)
	return review
}

func productRatings(t *testing.T, repo *fakeProductRepo, id string) entity.ProductRatings {
	t.Helper()
	product, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return product.Ratings
}

func TestCreateReviewAggregatesFirstReview(t *testing.T) {
	uc, _, productRepo, product := newReviewFixture()

	createReview(t, uc, product.ID.Hex(), 4)

	ratings := productRatings(t, productRepo, product.ID.Hex())
	assert.Equal(t, 4.0, ratings.AverageRating)
	assert.Equal(t, 1, ratings.ReviewsCount)
}

func TestCreateReviewRecomputesMean(t *testing.T) {
	uc, _, productRepo, product := newReviewFixture()

	createReview(t, uc, product.ID.Hex(), 4)
	createReview(t, uc, product.ID.Hex(), 2)

	ratings := productRatings(t, productRepo, product.ID.Hex())
	assert.Equal(t, 3.0, ratings.AverageRating)
	assert.Equal(t, 2, ratings.ReviewsCount)
}

func TestCreateReviewRoundsToOneDecimal(t *testing.T) {
	uc, _, productRepo, product := newReviewFixture()

	createReview(t, uc, product.ID.Hex(), 4)
	createReview(t, uc, product.ID.Hex(), 4)
	createReview(t, uc, product.ID.Hex(), 5)

	// mean 4.333... rounds to 4.3
	ratings := productRatings(t, productRepo, product.ID.Hex())
	assert.Equal(t, 4.3, ratings.AverageRating)
	assert.Equal(t, 3, ratings.ReviewsCount)
}

func TestDeactivateReviewRecomputes(t *testing.T) {
	uc, _, productRepo, product := newReviewFixture()

	highRated := createReview(t, uc, product.ID.Hex(), 4)
	createReview(t, uc, product.ID.Hex(), 2)

	_, err := uc.SetReviewActive(context.Background(), highRated.ID.Hex(), false)
	require.NoError(t, err)

	ratings := productRatings(t, productRepo, product.ID.Hex())
	assert.Equal(t, 2.0, ratings.AverageRating)
	assert.Equal(t, 1, ratings.ReviewsCount)

	// The inactive review still exists and stays referenced.
	stored, err := productRepo.GetByID(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, stored.Reviews, 2)
}

func TestDeleteReviewRecomputes(t *testing.T) {
	uc, reviewRepo, productRepo, product := newReviewFixture()

	createReview(t, uc, product.ID.Hex(), 4)
	lowRated := createReview(t, uc, product.ID.Hex(), 2)

	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}
	require.NoError(t, uc.DeleteReview(context.Background(), lowRated.ID.Hex(), admin))

	ratings := productRatings(t, productRepo, product.ID.Hex())
	assert.Equal(t, 4.0, ratings.AverageRating)
	assert.Equal(t, 1, ratings.ReviewsCount)
	assert.Equal(t, 1, reviewRepo.count())
}

func TestUpdateReviewRatingRecomputes(t *testing.T) {
	uc, _, productRepo, product := newReviewFixture()

	review := createReview(t, uc, product.ID.Hex(), 2)

	five := 5
	viewer := entity.Viewer{ID: review.ReviewerID.Hex(), Role: entity.RoleUser}
	_, err := uc.UpdateReview(context.Background(), review.ID.Hex(), UpdateReviewInput{Rating: &five}, viewer)
	require.NoError(t, err)

	assert.Equal(t, 5.0, productRatings(t, productRepo, product.ID.Hex()).AverageRating)
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	uc, reviewRepo, _, _ := newReviewFixture()

	_, err := uc.CreateReview(context.Background(), primitive.NewObjectID().Hex(), CreateReviewInput{
		ProductID: primitive.NewObjectID().Hex(),
		Rating:    4,
		Comment:   "this product does not exist",
	})

	assert.True(t, errors.Is(err, errors.CodeNotFound))
	assert.Equal(t, 0, reviewRepo.count(), "no review may be written for a missing product")
}

func TestCreateReviewRollsBackOnSyncFailure(t *testing.T) {
	uc, reviewRepo, productRepo, product := newReviewFixture()
	productRepo.failSync = true

	_, err := uc.CreateReview(context.Background(), primitive.NewObjectID().Hex(), CreateReviewInput{
		ProductID: product.ID.Hex(),
		Rating:    4,
		Comment:   "this write should be rolled back",
	})

	assert.Error(t, err)
	assert.Equal(t, 0, reviewRepo.count(), "review must not survive a failed aggregate sync")
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	uc, _, _, product := newReviewFixture()

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.CreateReview(context.Background(), primitive.NewObjectID().Hex(), CreateReviewInput{
			ProductID: product.ID.Hex(),
			Rating:    rating,
			Comment:   "rating outside the allowed range",
		})
		assert.True(t, errors.Is(err, errors.CodeValidation))
	}
}

func TestUpdateReviewOwnership(t *testing.T) {
	uc, _, _, product := newReviewFixture()

	review := createReview(t, uc, product.ID.Hex(), 4)
	stranger := entity.Viewer{ID: primitive.NewObjectID().Hex(), Role: entity.RoleUser}

	three := 3
	_, err := uc.UpdateReview(context.Background(), review.ID.Hex(), UpdateReviewInput{Rating: &three}, stranger)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	err = uc.DeleteReview(context.Background(), review.ID.Hex(), stranger)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestMarkBestReviewRequiresPrivilege(t *testing.T) {
	uc, _, _, product := newReviewFixture()

	review := createReview(t, uc, product.ID.Hex(), 5)
	owner := entity.Viewer{ID: review.ReviewerID.Hex(), Role: entity.RoleUser}

	best := true
	_, err := uc.UpdateReview(context.Background(), review.ID.Hex(), UpdateReviewInput{IsBest: &best}, owner)
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}
	updated, err := uc.UpdateReview(context.Background(), review.ID.Hex(), UpdateReviewInput{IsBest: &best}, admin)
	require.NoError(t, err)
	assert.True(t, updated.IsBest)
}

func TestConcurrentReviewsNoLostUpdate(t *testing.T) {
	uc, _, productRepo, product := newReviewFixture()

	const n = 24
	var wg sync.WaitGroup
	errs := make(chan error, n)

	sum := 0
	for i := 0; i < n; i++ {
		rating := i%5 + 1
		sum += rating
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			_, err := uc.CreateReview(context.Background(), primitive.NewObjectID().Hex(), CreateReviewInput{
				ProductID: product.ID.Hex(),
				Rating:    rating,
				Comment:   "concurrent review of the same product",
			})
			errs <- err
		}(rating)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	ratings := productRatings(t, productRepo, product.ID.Hex())
	assert.Equal(t, n, ratings.ReviewsCount)

	want := math.Round(float64(sum)/float64(n)*10) / 10
	assert.Equal(t, want, ratings.AverageRating)

	stored, err := productRepo.GetByID(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, stored.Reviews, n)
}
