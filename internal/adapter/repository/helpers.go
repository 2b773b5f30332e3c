package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/delwerhossain/e-com/pkg/errors"
)

// parseObjectID converts a hex string from the request path into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Validation("Invalid ID format", err)
	}
	return oid, nil
}

func isDuplicateEmail(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// containsRegex builds a case-insensitive substring match. The term is
// quoted so user input never acts as a pattern.
func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// nonEmptyField matches documents where the field exists with a non-empty value.
func nonEmptyField(field string) bson.M {
	return bson.M{field: bson.M{"$exists": true, "$ne": ""}}
}
