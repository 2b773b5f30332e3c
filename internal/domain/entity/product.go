package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRatings is a denormalized summary of the product's active reviews.
// It is a cache: the review aggregation recomputes it from scratch on every
// review mutation, never incrementally.
type ProductRatings struct {
	AverageRating float64 `json:"averageRating" bson:"averageRating"`
	ReviewsCount  int     `json:"reviewsCount" bson:"reviewsCount"`
}

type Product struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name          string              `json:"name" bson:"name"`
	Description   string              `json:"description" bson:"description"`
	Price         float64             `json:"price" bson:"price"`
	Quantity      int                 `json:"quantity" bson:"quantity"`
	VendorID      primitive.ObjectID  `json:"vendorId" bson:"vendorId"`
	CategoryID    *primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	SubCategoryID *primitive.ObjectID `json:"subCategoryId,omitempty" bson:"subCategoryId,omitempty"`
	Images        []string            `json:"images" bson:"images"`
	Color         string              `json:"color,omitempty" bson:"color,omitempty"`
	Size          string              `json:"size,omitempty" bson:"size,omitempty"`
	Weight        string              `json:"weight,omitempty" bson:"weight,omitempty"`

	IsFeatured    bool `json:"isFeatured" bson:"isFeatured"`
	IsActive      bool `json:"isActive" bson:"isActive"`
	IsDeleted     bool `json:"isDeleted" bson:"isDeleted"`
	IsBestProduct bool `json:"isBestProduct" bson:"isBestProduct"`

	Ratings ProductRatings       `json:"ratings" bson:"ratings"`
	Reviews []primitive.ObjectID `json:"reviews" bson:"reviews"`

	DiscountPercentage float64  `json:"discountPercentage" bson:"discountPercentage"`
	DiscountedPrice    *float64 `json:"discountedPrice,omitempty" bson:"discountedPrice,omitempty"`

	OutOfStock  bool   `json:"outOfStock" bson:"outOfStock"`
	RestockDate string `json:"restockDate,omitempty" bson:"restockDate,omitempty"`

	Delivery       string  `json:"delivery" bson:"delivery"` // "Free" or "Pay"
	DeliveryCharge float64 `json:"deliveryCharge" bson:"deliveryCharge"`

	MaxOrderQuantity int `json:"maxOrderQuantity,omitempty" bson:"maxOrderQuantity,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
