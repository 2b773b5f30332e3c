package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/delwerhossain/e-com/internal/domain/repository"
)

func pageDefault() repository.Page {
	return repository.Page{Number: 1, Limit: 10}
}

func TestProtectedFieldViolations(t *testing.T) {
	violations := protectedFieldViolations(map[string]interface{}{
		"role":      "admin",
		"profile":   map[string]interface{}{"name": "Jo"},
		"isDelete":  true,
		"createdAt": "2024-01-01",
	})
	assert.Equal(t, []string{"createdAt", "isDelete", "role"}, violations)

	assert.Empty(t, protectedFieldViolations(map[string]interface{}{
		"profile": map[string]interface{}{"name": "Jo"},
	}))
}

func TestFlattenUpdateMergesNestedObjects(t *testing.T) {
	set := flattenUpdate(map[string]interface{}{
		"email": "new@example.com",
		"profile": map[string]interface{}{
			"name": "Jo",
			"shippingAddress": map[string]interface{}{
				"city": "Dhaka",
			},
		},
	})

	assert.Equal(t, map[string]interface{}{
		"email":                        "new@example.com",
		"profile.name":                 "Jo",
		"profile.shippingAddress.city": "Dhaka",
	}, set)
}

func TestFlattenUpdateKeepsEmptyObjectsAndArrays(t *testing.T) {
	set := flattenUpdate(map[string]interface{}{
		"permissions": []interface{}{"catalog"},
		"profile":     map[string]interface{}{},
	})

	assert.Equal(t, []interface{}{"catalog"}, set["permissions"])
	// An empty object is written as-is; there is nothing to merge.
	assert.Equal(t, map[string]interface{}{}, set["profile"])
}
