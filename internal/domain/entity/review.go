package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating of a product. Unlike accounts, reviews are
// physically removed on delete.
type Review struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReviewerID primitive.ObjectID `json:"reviewerId" bson:"reviewerId"`
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Rating     int                `json:"rating" bson:"rating"` // 1-5
	Comment    string             `json:"comment" bson:"comment"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	IsDeleted  bool               `json:"isDeleted" bson:"isDeleted"`
	IsBest     bool               `json:"isBest" bson:"isBest"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CountsTowardRating reports whether the review participates in the
// product's denormalized rating summary.
func (r *Review) CountsTowardRating() bool {
	return r.IsActive && !r.IsDeleted
}
