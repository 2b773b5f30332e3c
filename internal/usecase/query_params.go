package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

// Query parameters arrive as raw strings. Parsing rules: boolean parameters
// accept only the literals "true" and "false"; range bounds are inclusive
// and omitted when absent; malformed dates and numbers are rejected, never
// coerced.

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseBoolParam(name, value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	return nil, errors.Validation(name+" must be true or false", nil)
}

func parseFloatParam(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errors.Validation(name+" must be a number", err)
	}
	return &v, nil
}

func parseIntParam(name, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.Validation(name+" must be an integer", err)
	}
	return &v, nil
}

func parseDateParam(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.Validation(name+" must be an RFC3339 or YYYY-MM-DD date", nil)
}

func parseDeleteVisibility(value string) (repository.DeleteVisibility, error) {
	switch value {
	case "":
		return repository.DeleteDefault, nil
	case "false":
		return repository.DeleteExcluded, nil
	case "true":
		return repository.DeleteOnly, nil
	}
	return repository.DeleteDefault, errors.Validation("isDelete must be true or false", nil)
}

// ParseAccountQuery builds the admin search query from raw parameters. The
// vendor-profile fields are simply ignored by collections that do not carry
// them.
func ParseAccountQuery(params map[string]string) (repository.AccountQuery, error) {
	q := repository.AccountQuery{
		Email:            params["email"],
		PhoneNumber:      params["phoneNumber"],
		Name:             params["name"],
		BusinessName:     params["businessName"],
		TaxID:            params["taxId"],
		ContactEmail:     params["contactEmail"],
		PublicPhone:      params["publicPhone"],
		BusinessCategory: params["businessCategory"],
		Country:          params["country"],
		City:             params["city"],
		State:            params["state"],
	}

	for name, target := range map[string]*bool{
		"hasSocialMedia": &q.HasSocialMedia,
		"hasWebsite":     &q.HasWebsite,
		"hasAvatar":      &q.HasAvatar,
	} {
		v, err := parseBoolParam(name, params[name])
		if err != nil {
			return q, err
		}
		if v != nil {
			*target = *v
		}
	}

	isActive, err := parseBoolParam("isActive", params["isActive"])
	if err != nil {
		return q, err
	}
	q.IsActive = isActive

	if q.Delete, err = parseDeleteVisibility(params["isDelete"]); err != nil {
		return q, err
	}

	if q.Ratings.From, err = parseFloatParam("ratingsFrom", params["ratingsFrom"]); err != nil {
		return q, err
	}
	if q.Ratings.To, err = parseFloatParam("ratingsTo", params["ratingsTo"]); err != nil {
		return q, err
	}
	if q.ReviewCount.From, err = parseIntParam("reviewCountFrom", params["reviewCountFrom"]); err != nil {
		return q, err
	}
	if q.ReviewCount.To, err = parseIntParam("reviewCountTo", params["reviewCountTo"]); err != nil {
		return q, err
	}

	if q.Created.From, err = parseDateParam("createdFrom", params["createdFrom"]); err != nil {
		return q, err
	}
	if q.Created.To, err = parseDateParam("createdTo", params["createdTo"]); err != nil {
		return q, err
	}
	if q.LastLogin.From, err = parseDateParam("lastLoginFrom", params["lastLoginFrom"]); err != nil {
		return q, err
	}
	if q.LastLogin.To, err = parseDateParam("lastLoginTo", params["lastLoginTo"]); err != nil {
		return q, err
	}

	return q, nil
}

// ParseProductQuery builds the public product listing query.
func ParseProductQuery(params map[string]string) (repository.ProductQuery, error) {
	q := repository.ProductQuery{
		SearchTerm:    params["searchTerm"],
		VendorID:      params["vendorId"],
		CategoryID:    params["categoryId"],
		SubCategoryID: params["subCategoryId"],
	}

	var err error
	for name, target := range map[string]**bool{
		"isActive":      &q.IsActive,
		"isFeatured":    &q.IsFeatured,
		"isBestProduct": &q.IsBestProduct,
		"outOfStock":    &q.OutOfStock,
	} {
		if *target, err = parseBoolParam(name, params[name]); err != nil {
			return q, err
		}
	}

	if q.Price.From, err = parseFloatParam("priceFrom", params["priceFrom"]); err != nil {
		return q, err
	}
	if q.Price.To, err = parseFloatParam("priceTo", params["priceTo"]); err != nil {
		return q, err
	}
	if q.Created.From, err = parseDateParam("createdFrom", params["createdFrom"]); err != nil {
		return q, err
	}
	if q.Created.To, err = parseDateParam("createdTo", params["createdTo"]); err != nil {
		return q, err
	}

	return q, nil
}

// ParseSort reads sortBy/sortOrder, also accepting the compact "sort" form
// with an optional leading "-" for descending.
func ParseSort(params map[string]string) repository.Sort {
	if compact := params["sort"]; compact != "" {
		if strings.HasPrefix(compact, "-") {
			return repository.Sort{Field: compact[1:], Desc: true}
		}
		return repository.Sort{Field: compact}
	}
	return repository.Sort{
		Field: params["sortBy"],
		Desc:  strings.EqualFold(params["sortOrder"], "desc"),
	}
}
