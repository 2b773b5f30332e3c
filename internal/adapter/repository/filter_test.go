package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	domain "github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

func boolPtr(b bool) *bool          { return &b }
func floatPtr(f float64) *float64   { return &f }
func intPtr(i int) *int             { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func TestAccountFilterSoftDeleteUnprivileged(t *testing.T) {
	viewer := entity.Viewer{ID: "u1", Role: entity.RoleUser}

	// An unprivileged viewer never sees deleted records, even when the
	// query explicitly asks for them.
	for _, vis := range []domain.DeleteVisibility{domain.DeleteDefault, domain.DeleteExcluded, domain.DeleteOnly} {
		filter := accountFilter(domain.AccountQuery{Delete: vis}, entity.RoleUser, viewer)
		assert.Equal(t, bson.M{"$ne": true}, filter["isDelete"])
	}
}

func TestAccountFilterSoftDeletePrivileged(t *testing.T) {
	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}

	filter := accountFilter(domain.AccountQuery{}, entity.RoleUser, admin)
	_, present := filter["isDelete"]
	assert.False(t, present, "default visibility should not constrain isDelete for admins")

	filter = accountFilter(domain.AccountQuery{Delete: domain.DeleteExcluded}, entity.RoleUser, admin)
	assert.Equal(t, bson.M{"$ne": true}, filter["isDelete"])

	filter = accountFilter(domain.AccountQuery{Delete: domain.DeleteOnly}, entity.RoleUser, admin)
	assert.Equal(t, true, filter["isDelete"])
}

func TestAccountFilterRegexFields(t *testing.T) {
	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}

	filter := accountFilter(domain.AccountQuery{Email: "john@example.com", Name: "Jo"}, entity.RoleUser, admin)

	email, ok := filter["email"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "i", email.Options)
	// Dots in the term must not act as regex wildcards.
	assert.Equal(t, `john@example\.com`, email.Pattern)

	name, ok := filter["profile.name"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "Jo", name.Pattern)
}

func TestAccountFilterVendorFields(t *testing.T) {
	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}

	q := domain.AccountQuery{
		BusinessName:   "Acme",
		Country:        "BD",
		HasSocialMedia: true,
		HasWebsite:     true,
		Ratings:        domain.FloatRange{From: floatPtr(3.5)},
		ReviewCount:    domain.IntRange{To: intPtr(100)},
	}
	filter := accountFilter(q, entity.RoleVendor, admin)

	assert.Equal(t, entity.RoleVendor, filter["role"])
	assert.IsType(t, primitive.Regex{}, filter["profile.businessName"])
	assert.Equal(t, "BD", filter["profile.contactInfo.contactAddress.country"])
	assert.Len(t, filter["$or"], 3)
	assert.Equal(t, bson.M{"$exists": true, "$ne": ""}, filter["profile.websiteUrl"])
	assert.Equal(t, bson.M{"$gte": 3.5}, filter["profile.ratings.averageRating"])
	assert.Equal(t, bson.M{"$lte": 100}, filter["profile.ratings.reviewCount"])
}

func TestAccountFilterActiveAndDateRange(t *testing.T) {
	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	q := domain.AccountQuery{
		IsActive: boolPtr(false),
		Created:  domain.TimeRange{From: timePtr(from), To: timePtr(to)},
	}
	filter := accountFilter(q, entity.RoleUser, admin)

	assert.Equal(t, false, filter["isActive"])
	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, filter["createdAt"])
}

func TestAdminRoleScope(t *testing.T) {
	super := entity.Viewer{ID: "s1", Role: entity.RoleSuperAdmin}
	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}
	user := entity.Viewer{ID: "u1", Role: entity.RoleUser}

	assert.Equal(t, bson.M{"$in": bson.A{entity.RoleAdmin, entity.RoleSuperAdmin}}, adminRoleScope(super))
	assert.Equal(t, entity.RoleAdmin, adminRoleScope(admin))
	assert.Equal(t, entity.RoleAdmin, adminRoleScope(user))
}

func TestProductFilter(t *testing.T) {
	vendorID := primitive.NewObjectID()

	q := domain.ProductQuery{
		SearchTerm: "lamp",
		VendorID:   vendorID.Hex(),
		IsActive:   boolPtr(true),
		OutOfStock: boolPtr(false),
		Price:      domain.FloatRange{From: floatPtr(10), To: floatPtr(50)},
	}
	filter := productFilter(q)

	name, ok := filter["name"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "lamp", name.Pattern)
	assert.Equal(t, vendorID, filter["vendorId"])
	assert.Equal(t, true, filter["isActive"])
	assert.Equal(t, false, filter["outOfStock"])
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, filter["price"])
}

func TestProductFilterEmpty(t *testing.T) {
	assert.Empty(t, productFilter(domain.ProductQuery{}))
}

func TestReviewFilter(t *testing.T) {
	productID := primitive.NewObjectID()

	filter, err := reviewFilter(domain.ReviewFilter{ProductID: productID.Hex(), IsActive: boolPtr(true)})
	assert.NoError(t, err)
	assert.Equal(t, productID, filter["productId"])
	assert.Equal(t, true, filter["isActive"])

	_, err = reviewFilter(domain.ReviewFilter{ProductID: "not-a-hex-id"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestSortDoc(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, sortDoc(domain.Sort{}))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, sortDoc(domain.Sort{Field: "price", Desc: true}))
}

func TestAccountProjection(t *testing.T) {
	user := entity.Viewer{ID: "u1", Role: entity.RoleUser}
	admin := entity.Viewer{ID: "a1", Role: entity.RoleAdmin}

	// Public single read strips everything restricted.
	proj := accountProjection(user, true)
	assert.Equal(t, bson.M{
		"passwordHash": 0,
		"isDelete":     0,
		"isActive":     0,
		"createdAt":    0,
		"updatedAt":    0,
	}, proj)

	// Public list keeps timestamps and the active flag.
	proj = accountProjection(user, false)
	assert.Equal(t, bson.M{"passwordHash": 0, "isDelete": 0}, proj)

	// Admins only lose the password hash.
	assert.Equal(t, bson.M{"passwordHash": 0}, accountProjection(admin, true))
	assert.Equal(t, bson.M{"passwordHash": 0}, accountProjection(admin, false))
}

func TestPageSkip(t *testing.T) {
	assert.Equal(t, 0, domain.Page{Number: 1, Limit: 10}.Skip())
	assert.Equal(t, 20, domain.Page{Number: 3, Limit: 10}.Skip())
	assert.Equal(t, 0, domain.Page{Number: 0, Limit: 10}.Skip())
}
