package usecase

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/delwerhossain/e-com/pkg/errors"
)

// protectedAccountFields may only be set by a privileged caller. An update
// payload touching any of them is rejected in full; nothing is applied.
var protectedAccountFields = map[string]struct{}{
	"role":         {},
	"isActive":     {},
	"isDelete":     {},
	"createdAt":    {},
	"updatedAt":    {},
	"lastLogin":    {},
	"passwordHash": {},
}

func protectedFieldViolations(payload map[string]interface{}) []string {
	var fields []string
	for key := range payload {
		if _, ok := protectedAccountFields[key]; ok {
			fields = append(fields, key)
		}
	}
	sort.Strings(fields)
	return fields
}

// flattenUpdate turns nested objects into dotted paths so a partial profile
// update merges into the stored subdocument instead of replacing it.
func flattenUpdate(payload map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(payload))
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for key, value := range m {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			if nested, ok := value.(map[string]interface{}); ok && len(nested) > 0 {
				walk(path, nested)
				continue
			}
			out[path] = value
		}
	}
	walk("", payload)
	return out
}

func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Validation("Invalid id format", err)
	}
	return oid, nil
}
