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

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) domain.UserRepository {
	return &mongoUserRepository{
		coll: db.Collection("users"),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if isDuplicateEmail(err) {
			return errors.Conflict("Email already exists")
		}
		return errors.Internal("Failed to create user", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *mongoUserRepository) GetByIDOrEmail(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.User, error) {
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

	var user entity.User
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	return &user, nil
}

func (r *mongoUserRepository) GetCredentials(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	return &user, nil
}

func (r *mongoUserRepository) List(ctx context.Context, query domain.AccountQuery, sort domain.Sort, page domain.Page, viewer entity.Viewer) ([]*entity.User, int64, error) {
	filter := accountFilter(query, entity.RoleUser, viewer)

	// The total reflects the filter, not the page window.
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}

	opts := options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.Limit)).
		SetProjection(accountProjection(viewer, false))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list users", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, errors.Internal("Failed to decode users", err)
	}

	return users, total, nil
}

func (r *mongoUserRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"passwordHash": 0})

	var user entity.User
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to update user", err)
	}

	return &user, nil
}

func (r *mongoUserRepository) SoftDelete(ctx context.Context, id string) (*entity.User, error) {
	return r.Update(ctx, id, map[string]interface{}{"isDelete": true})
}

func (r *mongoUserRepository) SetLastLogin(ctx context.Context, id string, login entity.LastLogin) error {
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
