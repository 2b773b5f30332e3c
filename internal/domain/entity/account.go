package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles carried in JWT claims and account documents.
const (
	RoleUser       = "user"
	RoleVendor     = "vendor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superAdmin"
)

type Address struct {
	Street     string `json:"street,omitempty" bson:"street,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string `json:"country,omitempty" bson:"country,omitempty"`
}

type LastLogin struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	IP        string    `json:"ip,omitempty" bson:"ip,omitempty"`
}

type CommunicationPreferences struct {
	Email             bool `json:"email" bson:"email"`
	SMS               bool `json:"sms" bson:"sms"`
	PushNotifications bool `json:"pushNotifications" bson:"pushNotifications"`
}

type UserProfile struct {
	Name            string     `json:"name,omitempty" bson:"name,omitempty"`
	PhoneNumber     string     `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	AvatarURL       string     `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	ShippingAddress *Address   `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	BillingAddress  *Address   `json:"billingAddress,omitempty" bson:"billingAddress,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender          string     `json:"gender,omitempty" bson:"gender,omitempty"` // male, female, other
}

type VendorRatings struct {
	AverageRating float64 `json:"averageRating" bson:"averageRating"`
	ReviewCount   int     `json:"reviewCount" bson:"reviewCount"`
}

type SocialMediaLinks struct {
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

type ContactInfo struct {
	ContactEmail   string   `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	PublicPhone    string   `json:"publicPhone,omitempty" bson:"publicPhone,omitempty"`
	ContactAddress *Address `json:"contactAddress,omitempty" bson:"contactAddress,omitempty"`
}

type VendorProfile struct {
	BusinessName       string              `json:"businessName" bson:"businessName"`
	AvatarURL          string              `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Description        string              `json:"description,omitempty" bson:"description,omitempty"`
	Ratings            VendorRatings       `json:"ratings" bson:"ratings"`
	BusinessCategoryID *primitive.ObjectID `json:"businessCategoryId,omitempty" bson:"businessCategoryId,omitempty"`
	WebsiteURL         string              `json:"websiteUrl,omitempty" bson:"websiteUrl,omitempty"`
	SocialMediaLinks   *SocialMediaLinks   `json:"socialMediaLinks,omitempty" bson:"socialMediaLinks,omitempty"`
	TaxID              string              `json:"taxId,omitempty" bson:"taxId,omitempty"`
	ContactInfo        *ContactInfo        `json:"contactInfo,omitempty" bson:"contactInfo,omitempty"`
}

type AdminProfile struct {
	Name        string `json:"name" bson:"name"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	AvatarURL   string `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
}

type User struct {
	ID            primitive.ObjectID        `json:"id" bson:"_id,omitempty"`
	Email         string                    `json:"email" bson:"email"`
	EmailVerified bool                      `json:"emailVerified" bson:"emailVerified"`
	PasswordHash  string                    `json:"-" bson:"passwordHash,omitempty"`
	Role          string                    `json:"role" bson:"role"`
	IsDelete      bool                      `json:"isDelete,omitempty" bson:"isDelete"`
	IsActive      bool                      `json:"isActive" bson:"isActive"`
	LastLogin     *LastLogin                `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	Profile       *UserProfile              `json:"profile,omitempty" bson:"profile,omitempty"`
	Preferences   *CommunicationPreferences `json:"communicationPreferences,omitempty" bson:"communicationPreferences,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt,omitempty" bson:"updatedAt"`
}

type Vendor struct {
	ID            primitive.ObjectID        `json:"id" bson:"_id,omitempty"`
	Email         string                    `json:"email" bson:"email"`
	PhoneNumber   string                    `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	EmailVerified bool                      `json:"emailVerified" bson:"emailVerified"`
	PasswordHash  string                    `json:"-" bson:"passwordHash,omitempty"`
	Role          string                    `json:"role" bson:"role"`
	IsDelete      bool                      `json:"isDelete,omitempty" bson:"isDelete"`
	IsActive      bool                      `json:"isActive" bson:"isActive"`
	LastLogin     *LastLogin                `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	Profile       *VendorProfile            `json:"profile,omitempty" bson:"profile,omitempty"`
	Preferences   *CommunicationPreferences `json:"communicationPreferences,omitempty" bson:"communicationPreferences,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt,omitempty" bson:"updatedAt"`
}

type Admin struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash,omitempty"`
	Role         string             `json:"role" bson:"role"` // "admin" or "superAdmin"
	IsDelete     bool               `json:"isDelete,omitempty" bson:"isDelete"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	LastLogin    *LastLogin         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	Profile      *AdminProfile      `json:"profile,omitempty" bson:"profile,omitempty"`
	Permissions  []string           `json:"permissions" bson:"permissions"`
	CreatedAt    time.Time          `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt"`
}
