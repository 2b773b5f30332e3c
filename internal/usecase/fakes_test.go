package usecase

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

// In-memory repository fakes. All methods are safe for concurrent use so the
// aggregation race tests exercise the usecase locking, not fake internals.

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	review.ID = primitive.NewObjectID()
	clone := *review
	f.reviews[review.ID.Hex()] = &clone
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	clone := *review
	return &clone, nil
}

func (f *fakeReviewRepo) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Review
	for _, review := range f.reviews {
		if filter.ProductID != "" && review.ProductID.Hex() != filter.ProductID {
			continue
		}
		if filter.IsActive != nil && review.IsActive != *filter.IsActive {
			continue
		}
		if filter.IsBest != nil && review.IsBest != *filter.IsBest {
			continue
		}
		clone := *review
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	for key, value := range set {
		switch key {
		case "rating":
			review.Rating = value.(int)
		case "comment":
			review.Comment = value.(string)
		case "isActive":
			review.IsActive = value.(bool)
		case "isBest":
			review.IsBest = value.(bool)
		}
	}
	clone := *review
	return &clone, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reviews)
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	failSync bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) seed(product *entity.Product) *entity.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	f.products[product.ID.Hex()] = product
	return product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.seed(product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProductRepo) List(ctx context.Context, query repository.ProductQuery, sort repository.Sort, page repository.Page) ([]*entity.Product, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Product
	for _, product := range f.products {
		clone := *product
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	if active, ok := set["isActive"].(bool); ok {
		product.IsActive = active
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) SyncRatings(ctx context.Context, id string, ratings entity.ProductRatings, reviewIDs []primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSync {
		return errors.Internal("sync failed", nil)
	}
	product, ok := f.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Ratings = ratings
	product.Reviews = reviewIDs
	return nil
}

type fakeUserRepo struct {
	mu          sync.Mutex
	users       map[string]*entity.User
	updateCalls int
	lastSet     map[string]interface{}
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) seed(user *entity.User) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = user
	return user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return errors.Conflict("Email already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	clone := *user
	f.users[user.ID.Hex()] = &clone
	return nil
}

func (f *fakeUserRepo) GetByIDOrEmail(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if (id != "" && user.ID.Hex() == id) || (id == "" && user.Email == email) {
			if user.IsDelete && !viewer.Privileged() {
				return nil, errors.NotFound("User", nil)
			}
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetCredentials(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) List(ctx context.Context, query repository.AccountQuery, sort repository.Sort, page repository.Page, viewer entity.Viewer) ([]*entity.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, user := range f.users {
		if user.IsDelete && !viewer.Privileged() {
			continue
		}
		clone := *user
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.lastSet = set
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	if active, ok := set["isActive"].(bool); ok {
		user.IsActive = active
	}
	if deleted, ok := set["isDelete"].(bool); ok {
		user.IsDelete = deleted
	}
	if hash, ok := set["passwordHash"].(string); ok {
		user.PasswordHash = hash
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) SoftDelete(ctx context.Context, id string) (*entity.User, error) {
	return f.Update(ctx, id, map[string]interface{}{"isDelete": true})
}

func (f *fakeUserRepo) SetLastLogin(ctx context.Context, id string, login entity.LastLogin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.LastLogin = &login
	return nil
}
