package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

func TestParseAccountQueryBooleansAreStrict(t *testing.T) {
	_, err := ParseAccountQuery(map[string]string{"isActive": "yes"})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = ParseAccountQuery(map[string]string{"hasWebsite": "1"})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	q, err := ParseAccountQuery(map[string]string{"isActive": "false"})
	require.NoError(t, err)
	require.NotNil(t, q.IsActive)
	assert.False(t, *q.IsActive)
}

func TestParseAccountQueryDeleteTriState(t *testing.T) {
	q, err := ParseAccountQuery(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, repository.DeleteDefault, q.Delete)

	q, err = ParseAccountQuery(map[string]string{"isDelete": "false"})
	require.NoError(t, err)
	assert.Equal(t, repository.DeleteExcluded, q.Delete)

	q, err = ParseAccountQuery(map[string]string{"isDelete": "true"})
	require.NoError(t, err)
	assert.Equal(t, repository.DeleteOnly, q.Delete)

	_, err = ParseAccountQuery(map[string]string{"isDelete": "maybe"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestParseAccountQueryDates(t *testing.T) {
	q, err := ParseAccountQuery(map[string]string{
		"createdFrom": "2024-01-02",
		"createdTo":   "2024-06-30T15:04:05Z",
	})
	require.NoError(t, err)
	require.NotNil(t, q.Created.From)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *q.Created.From)
	require.NotNil(t, q.Created.To)

	// Malformed dates are rejected, never coerced.
	_, err = ParseAccountQuery(map[string]string{"createdFrom": "not-a-date"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
	_, err = ParseAccountQuery(map[string]string{"lastLoginTo": "31/12/2024"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestParseAccountQueryRanges(t *testing.T) {
	q, err := ParseAccountQuery(map[string]string{
		"ratingsFrom":     "3.5",
		"reviewCountTo":   "100",
		"businessName":    "Acme",
		"hasSocialMedia":  "true",
	})
	require.NoError(t, err)
	require.NotNil(t, q.Ratings.From)
	assert.Equal(t, 3.5, *q.Ratings.From)
	assert.Nil(t, q.Ratings.To)
	require.NotNil(t, q.ReviewCount.To)
	assert.Equal(t, 100, *q.ReviewCount.To)
	assert.Equal(t, "Acme", q.BusinessName)
	assert.True(t, q.HasSocialMedia)

	_, err = ParseAccountQuery(map[string]string{"ratingsFrom": "lots"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestParseProductQuery(t *testing.T) {
	q, err := ParseProductQuery(map[string]string{
		"searchTerm": "lamp",
		"isActive":   "true",
		"priceFrom":  "10",
		"priceTo":    "49.99",
	})
	require.NoError(t, err)
	assert.Equal(t, "lamp", q.SearchTerm)
	require.NotNil(t, q.IsActive)
	assert.True(t, *q.IsActive)
	assert.Equal(t, 10.0, *q.Price.From)
	assert.Equal(t, 49.99, *q.Price.To)

	_, err = ParseProductQuery(map[string]string{"priceFrom": "cheap"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, repository.Sort{}, ParseSort(map[string]string{}))
	assert.Equal(t, repository.Sort{Field: "price", Desc: true}, ParseSort(map[string]string{"sort": "-price"}))
	assert.Equal(t, repository.Sort{Field: "price"}, ParseSort(map[string]string{"sort": "price"}))
	assert.Equal(t, repository.Sort{Field: "createdAt", Desc: true}, ParseSort(map[string]string{"sortBy": "createdAt", "sortOrder": "desc"}))
	assert.Equal(t, repository.Sort{Field: "email"}, ParseSort(map[string]string{"sortBy": "email", "sortOrder": "asc"}))
}
