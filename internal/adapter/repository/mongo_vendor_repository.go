package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	domain "github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

type mongoVendorRepository struct {
	coll *mongo.Collection
}

func NewMongoVendorRepository(db *mongo.Database) domain.VendorRepository {
	return &mongoVendorRepository{
		coll: db.Collection("vendors"),
	}
}

func (r *mongoVendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	now := time.Now()
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = now
	}
	vendor.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, vendor)
	if err != nil {
		if isDuplicateEmail(err) {
			return errors.Conflict("Email already exists")
		}
		return errors.Internal("Failed to create vendor", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		vendor.ID = oid
	}
	return nil
}

func (r *mongoVendorRepository) GetByIDOrEmail(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.Vendor, error) {
	filter := bson.M{}
	if id != "" {
		oid, err := parseObjectID(id)
		if err != nil {
			return nil, err
		}
		filter["_id"] = oid
	} else {
		filter["email"] = email
	}
	if !viewer.Privileged() {
		filter["isDelete"] = bson.M{"$ne": true}
	}

	opts := options.FindOne().SetProjection(accountProjection(viewer, true))

	var vendor entity.Vendor
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&vendor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Vendor", err)
		}
		return nil, errors.Internal("Failed to get vendor", err)
	}

	return &vendor, nil
}

func (r *mongoVendorRepository) GetCredentials(ctx context.Context, email string) (*entity.Vendor, error) {
	var vendor entity.Vendor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&vendor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Vendor", err)
		}
		return nil, errors.Internal("Failed to get vendor", err)
	}
	return &vendor, nil
}

func (r *mongoVendorRepository) List(ctx context.Context, query domain.AccountQuery, sort domain.Sort, page domain.Page, viewer entity.Viewer) ([]*entity.Vendor, int64, error) {
	filter := accountFilter(query, entity.RoleVendor, viewer)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count vendors", err)
	}

	opts := options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.Limit)).
		SetProjection(accountProjection(viewer, false))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list vendors", err)
	}
	defer cursor.Close(ctx)

	var vendors []*entity.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, 0, errors.Internal("Failed to decode vendors", err)
	}

	return vendors, total, nil
}

func (r *mongoVendorRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Vendor, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"passwordHash": 0})

	var vendor entity.Vendor
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Vendor", err)
		}
		return nil, errors.Internal("Failed to update vendor", err)
	}

	return &vendor, nil
}

func (r *mongoVendorRepository) SoftDelete(ctx context.Context, id string) (*entity.Vendor, error) {
	return r.Update(ctx, id, map[string]interface{}{"isDelete": true})
}

func (r *mongoVendorRepository) SetLastLogin(ctx context.Context, id string, login entity.LastLogin) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"lastLogin": login}})
	if err != nil {
		return errors.Internal("Failed to record last login", err)
	}
	return nil
}
