package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	domain "github.com/delwerhossain/e-com/internal/domain/repository"
)

// accountFilter translates an account query into a Mongo filter document.
// The soft-delete rule is applied here, at the data-access boundary: an
// unprivileged viewer never sees a soft-deleted record no matter what the
// query asked for; a privileged viewer gets the tri-state as requested.
func accountFilter(q domain.AccountQuery, role string, viewer entity.Viewer) bson.M {
	filter := bson.M{}

	if role != "" {
		filter["role"] = role
	}

	if q.Email != "" {
		filter["email"] = containsRegex(q.Email)
	}
	if q.PhoneNumber != "" {
		filter["phoneNumber"] = containsRegex(q.PhoneNumber)
	}
	if q.Name != "" {
		filter["profile.name"] = containsRegex(q.Name)
	}

	if q.BusinessName != "" {
		filter["profile.businessName"] = containsRegex(q.BusinessName)
	}
	if q.TaxID != "" {
		filter["profile.taxId"] = containsRegex(q.TaxID)
	}
	if q.ContactEmail != "" {
		filter["profile.contactInfo.contactEmail"] = containsRegex(q.ContactEmail)
	}
	if q.PublicPhone != "" {
		filter["profile.contactInfo.publicPhone"] = containsRegex(q.PublicPhone)
	}
	if q.BusinessCategory != "" {
		if oid, err := primitive.ObjectIDFromHex(q.BusinessCategory); err == nil {
			filter["profile.businessCategoryId"] = oid
		} else {
			filter["profile.businessCategoryId"] = q.BusinessCategory
		}
	}
	if q.Country != "" {
		filter["profile.contactInfo.contactAddress.country"] = q.Country
	}
	if q.City != "" {
		filter["profile.contactInfo.contactAddress.city"] = q.City
	}
	if q.State != "" {
		filter["profile.contactInfo.contactAddress.state"] = q.State
	}

	if q.HasSocialMedia {
		filter["$or"] = bson.A{
			nonEmptyField("profile.socialMediaLinks.facebook"),
			nonEmptyField("profile.socialMediaLinks.twitter"),
			nonEmptyField("profile.socialMediaLinks.instagram"),
		}
	}
	if q.HasWebsite {
		filter["profile.websiteUrl"] = bson.M{"$exists": true, "$ne": ""}
	}
	if q.HasAvatar {
		filter["profile.avatarUrl"] = bson.M{"$exists": true, "$ne": ""}
	}

	if !q.Ratings.Empty() {
		filter["profile.ratings.averageRating"] = rangeFilterFloat(q.Ratings)
	}
	if !q.ReviewCount.Empty() {
		filter["profile.ratings.reviewCount"] = rangeFilterInt(q.ReviewCount)
	}
	if !q.Created.Empty() {
		filter["createdAt"] = rangeFilterTime(q.Created)
	}
	if !q.LastLogin.Empty() {
		filter["lastLogin.timestamp"] = rangeFilterTime(q.LastLogin)
	}

	if q.IsActive != nil {
		filter["isActive"] = *q.IsActive
	}

	if !viewer.Privileged() {
		filter["isDelete"] = bson.M{"$ne": true}
	} else {
		switch q.Delete {
		case domain.DeleteExcluded:
			filter["isDelete"] = bson.M{"$ne": true}
		case domain.DeleteOnly:
			filter["isDelete"] = true
		}
	}

	return filter
}

// adminRoleScope returns the role constraint for the admins collection.
// superAdmin records are invisible to anyone who is not one, including in
// totals.
func adminRoleScope(viewer entity.Viewer) interface{} {
	if viewer.SuperAdmin() {
		return bson.M{"$in": bson.A{entity.RoleAdmin, entity.RoleSuperAdmin}}
	}
	return entity.RoleAdmin
}

func productFilter(q domain.ProductQuery) bson.M {
	filter := bson.M{}

	if q.SearchTerm != "" {
		filter["name"] = containsRegex(q.SearchTerm)
	}
	if q.VendorID != "" {
		if oid, err := primitive.ObjectIDFromHex(q.VendorID); err == nil {
			filter["vendorId"] = oid
		} else {
			filter["vendorId"] = q.VendorID
		}
	}
	if q.CategoryID != "" {
		if oid, err := primitive.ObjectIDFromHex(q.CategoryID); err == nil {
			filter["categoryId"] = oid
		} else {
			filter["categoryId"] = q.CategoryID
		}
	}
	if q.SubCategoryID != "" {
		if oid, err := primitive.ObjectIDFromHex(q.SubCategoryID); err == nil {
			filter["subCategoryId"] = oid
		} else {
			filter["subCategoryId"] = q.SubCategoryID
		}
	}

	if q.IsActive != nil {
		filter["isActive"] = *q.IsActive
	}
	if q.IsFeatured != nil {
		filter["isFeatured"] = *q.IsFeatured
	}
	if q.IsBestProduct != nil {
		filter["isBestProduct"] = *q.IsBestProduct
	}
	if q.OutOfStock != nil {
		filter["outOfStock"] = *q.OutOfStock
	}

	if !q.Price.Empty() {
		filter["price"] = rangeFilterFloat(q.Price)
	}
	if !q.Created.Empty() {
		filter["createdAt"] = rangeFilterTime(q.Created)
	}

	return filter
}

func reviewFilter(f domain.ReviewFilter) (bson.M, error) {
	filter := bson.M{}

	if f.ProductID != "" {
		oid, err := parseObjectID(f.ProductID)
		if err != nil {
			return nil, err
		}
		filter["productId"] = oid
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	if f.IsBest != nil {
		filter["isBest"] = *f.IsBest
	}

	return filter, nil
}

func rangeFilterFloat(r domain.FloatRange) bson.M {
	m := bson.M{}
	if r.From != nil {
		m["$gte"] = *r.From
	}
	if r.To != nil {
		m["$lte"] = *r.To
	}
	return m
}

func rangeFilterInt(r domain.IntRange) bson.M {
	m := bson.M{}
	if r.From != nil {
		m["$gte"] = *r.From
	}
	if r.To != nil {
		m["$lte"] = *r.To
	}
	return m
}

func rangeFilterTime(r domain.TimeRange) bson.M {
	m := bson.M{}
	if r.From != nil {
		m["$gte"] = *r.From
	}
	if r.To != nil {
		m["$lte"] = *r.To
	}
	return m
}

func sortDoc(s domain.Sort) bson.D {
	field := s.Field
	if field == "" {
		field = "createdAt"
	}
	order := 1
	if s.Desc {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

// accountProjection strips role-restricted fields at the store boundary.
// The password hash never leaves the database; soft-delete bookkeeping is
// privileged-only. Single-record public reads also drop timestamps and the
// active flag.
func accountProjection(viewer entity.Viewer, single bool) bson.M {
	projection := bson.M{"passwordHash": 0}
	if !viewer.Privileged() {
		projection["isDelete"] = 0
		if single {
			projection["isActive"] = 0
			projection["createdAt"] = 0
			projection["updatedAt"] = 0
		}
	}
	return projection
}
