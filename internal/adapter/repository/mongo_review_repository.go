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

type mongoReviewRepository struct {
	coll *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) domain.ReviewRepository {
	return &mongoReviewRepository{
		coll: db.Collection("reviews"),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

func (r *mongoReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var review entity.Review
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}

	return &review, nil
}

func (r *mongoReviewRepository) List(ctx context.Context, filter domain.ReviewFilter) ([]*entity.Review, error) {
	query, err := reviewFilter(filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}
	defer cursor.Close(ctx)

	var reviews []*entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, errors.Internal("Failed to decode reviews", err)
	}

	return reviews, nil
}

func (r *mongoReviewRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Review, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review entity.Review
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to update review", err)
	}

	return &review, nil
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete review", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Review", nil)
	}
	return nil
}
