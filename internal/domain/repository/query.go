package repository

import (
	"time"
)

// DeleteVisibility is the tri-state soft-delete filter requested by the
// caller. The store adapter combines it with the viewer's privilege: an
// unprivileged viewer always gets DeleteExcluded regardless of the request.
type DeleteVisibility int

const (
	DeleteDefault  DeleteVisibility = iota // defer to viewer privilege
	DeleteExcluded                         // hide soft-deleted records
	DeleteOnly                             // show only soft-deleted records
)

type FloatRange struct {
	From *float64
	To   *float64
}

func (r FloatRange) Empty() bool { return r.From == nil && r.To == nil }

type IntRange struct {
	From *int
	To   *int
}

func (r IntRange) Empty() bool { return r.From == nil && r.To == nil }

type TimeRange struct {
	From *time.Time
	To   *time.Time
}

func (r TimeRange) Empty() bool { return r.From == nil && r.To == nil }

type Sort struct {
	Field string
	Desc  bool
}

type Page struct {
	Number int
	Limit  int
}

func (p Page) Skip() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// AccountQuery covers the admin search surface shared by users, vendors and
// admins. Free-text fields match as case-insensitive substrings; range
// bounds are inclusive and omitted when nil. Fields that do not apply to a
// collection are simply left zero.
type AccountQuery struct {
	Email       string
	PhoneNumber string
	Name        string // user/admin profile name

	// Vendor profile fields.
	BusinessName     string
	TaxID            string
	ContactEmail     string
	PublicPhone      string
	BusinessCategory string
	Country          string
	City             string
	State            string
	HasSocialMedia   bool
	HasWebsite       bool
	HasAvatar        bool
	Ratings          FloatRange
	ReviewCount      IntRange

	IsActive  *bool
	Delete    DeleteVisibility
	Created   TimeRange
	LastLogin TimeRange
}

// ProductQuery drives the public product listing.
type ProductQuery struct {
	SearchTerm    string // case-insensitive substring on name
	VendorID      string
	CategoryID    string
	SubCategoryID string
	IsActive      *bool
	IsFeatured    *bool
	IsBestProduct *bool
	OutOfStock    *bool
	Price         FloatRange
	Created       TimeRange
}
