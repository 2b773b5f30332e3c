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

type mongoAdminRepository struct {
	coll *mongo.Collection
}

func NewMongoAdminRepository(db *mongo.Database) domain.AdminRepository {
	return &mongoAdminRepository{
		coll: db.Collection("admins"),
	}
}

func (r *mongoAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	now := time.Now()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		if isDuplicateEmail(err) {
			return errors.Conflict("Email already exists")
		}
		return errors.Internal("Failed to create admin", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func (r *mongoAdminRepository) GetByIDOrEmail(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.Admin, error) {
	filter := bson.M{"role": adminRoleScope(viewer)}
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

	var admin entity.Admin
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			// A superAdmin record hidden from this viewer is
			// indistinguishable from a missing one.
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin", err)
	}

	return &admin, nil
}

func (r *mongoAdminRepository) GetCredentials(ctx context.Context, email string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin", err)
	}
	return &admin, nil
}

func (r *mongoAdminRepository) List(ctx context.Context, query domain.AccountQuery, sort domain.Sort, page domain.Page, viewer entity.Viewer) ([]*entity.Admin, int64, error) {
	filter := accountFilter(query, "", viewer)
	filter["role"] = adminRoleScope(viewer)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count admins", err)
	}

	opts := options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.Limit)).
		SetProjection(accountProjection(viewer, false))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list admins", err)
	}
	defer cursor.Close(ctx)

	var admins []*entity.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, 0, errors.Internal("Failed to decode admins", err)
	}

	return admins, total, nil
}

func (r *mongoAdminRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Admin, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"passwordHash": 0})

	var admin entity.Admin
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to update admin", err)
	}

	return &admin, nil
}

func (r *mongoAdminRepository) SoftDelete(ctx context.Context, id string) (*entity.Admin, error) {
	return r.Update(ctx, id, map[string]interface{}{"isDelete": true})
}

func (r *mongoAdminRepository) SetLastLogin(ctx context.Context, id string, login entity.LastLogin) error {
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
