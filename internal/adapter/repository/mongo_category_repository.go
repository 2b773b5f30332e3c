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

type mongoCategoryRepository struct {
	coll *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) domain.CategoryRepository {
	return &mongoCategoryRepository{
		coll: db.Collection("categories"),
	}
}

func (r *mongoCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	now := time.Now()
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	category.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Category name already exists")
		}
		return errors.Internal("Failed to create category", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	return nil
}

func (r *mongoCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var category entity.Category
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&category); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to get category", err)
	}

	return &category, nil
}

func (r *mongoCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list categories", err)
	}
	defer cursor.Close(ctx)

	var categories []*entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errors.Internal("Failed to decode categories", err)
	}

	return categories, nil
}

func (r *mongoCategoryRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category entity.Category
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to update category", err)
	}

	return &category, nil
}

func (r *mongoCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete category", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Category", nil)
	}
	return nil
}

type mongoSubCategoryRepository struct {
	coll *mongo.Collection
}

func NewMongoSubCategoryRepository(db *mongo.Database) domain.SubCategoryRepository {
	return &mongoSubCategoryRepository{
		coll: db.Collection("subcategories"),
	}
}

func (r *mongoSubCategoryRepository) Create(ctx context.Context, subCategory *entity.SubCategory) error {
	now := time.Now()
	if subCategory.CreatedAt.IsZero() {
		subCategory.CreatedAt = now
	}
	subCategory.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, subCategory)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Subcategory name already exists")
		}
		return errors.Internal("Failed to create subcategory", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		subCategory.ID = oid
	}
	return nil
}

func (r *mongoSubCategoryRepository) GetByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var subCategory entity.SubCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&subCategory); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Subcategory", err)
		}
		return nil, errors.Internal("Failed to get subcategory", err)
	}

	return &subCategory, nil
}

func (r *mongoSubCategoryRepository) List(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.SubCategory, error) {
	filter := bson.M{}
	if categoryID != "" {
		oid, err := parseObjectID(categoryID)
		if err != nil {
			return nil, err
		}
		filter["categoryId"] = oid
	}
	if activeOnly {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list subcategories", err)
	}
	defer cursor.Close(ctx)

	var subCategories []*entity.SubCategory
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, errors.Internal("Failed to decode subcategories", err)
	}

	return subCategories, nil
}

func (r *mongoSubCategoryRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*entity.SubCategory, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var subCategory entity.SubCategory
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&subCategory)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Subcategory", err)
		}
		return nil, errors.Internal("Failed to update subcategory", err)
	}

	return &subCategory, nil
}

func (r *mongoSubCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete subcategory", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Subcategory", nil)
	}
	return nil
}
