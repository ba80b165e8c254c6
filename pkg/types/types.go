// Package domain defines the core business types for the PawMart marketplace.
package domain

import (
	"errors"
	"strings"
	"time"
)

// CategoryPets is the category whose listings are adopted rather than bought.
const CategoryPets = "Pets"

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll = "All"

// OrderStatus is the lifecycle status of an order or adoption request.
type OrderStatus string

// Order status constants.
const (
	StatusPending           OrderStatus = "Pending"
	StatusAdoptionRequested OrderStatus = "Adoption Requested"
)

// Theme is the persisted UI colour scheme.
type Theme string

// Theme constants.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Listing is a marketplace record: a pet available for adoption or a product
// for sale. Decoding is lenient, see UnmarshalJSON.
type Listing struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	Location    string     `json:"location"`
	Image       string     `json:"image,omitempty"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date,omitempty"` // pickup or available date
	Email       string     `json:"email,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// IsPet reports whether the listing is in the adoption category.
func (l *Listing) IsPet() bool {
	return l.Category == CategoryPets
}

// IsFreeAdoption reports whether the listing is a pet offered at no cost.
func (l *Listing) IsFreeAdoption() bool {
	return l.IsPet() && l.Price == 0
}

// CreatedTime returns the creation timestamp, or the Unix epoch when unknown.
func (l *Listing) CreatedTime() time.Time {
	if l.CreatedAt == nil {
		return time.Unix(0, 0).UTC()
	}
	return *l.CreatedAt
}

// ListingUpdate is a partial listing used for PUT requests. Nil fields are
// left untouched by the server.
type ListingUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u *ListingUpdate) Empty() bool {
	return u.Name == nil && u.Category == nil && u.Price == nil &&
		u.Location == nil && u.Image == nil && u.Description == nil && u.Date == nil
}

// Validate rejects updates that would leave a listing with a negative
// price or a blank name or category.
func (u *ListingUpdate) Validate() error {
	var errs []error
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if u.Category != nil && strings.TrimSpace(*u.Category) == "" {
		errs = append(errs, errors.New("category must not be empty"))
	}
	if u.Price != nil && *u.Price < 0 {
		errs = append(errs, errors.New("price must not be negative"))
	}
	return errors.Join(errs...)
}

// Apply copies the set fields of u onto l.
func (u *ListingUpdate) Apply(l *Listing) {
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Category != nil {
		l.Category = *u.Category
	}
	if u.Price != nil {
		l.Price = *u.Price
	}
	if u.Location != nil {
		l.Location = *u.Location
	}
	if u.Image != nil {
		l.Image = *u.Image
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Date != nil {
		l.Date = *u.Date
	}
}

// Order is an order or adoption request as submitted to the orders API.
type Order struct {
	ID          string      `json:"_id,omitempty"`
	BuyerName   string      `json:"buyerName"`
	Email       string      `json:"email"`
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Category    string      `json:"category,omitempty"`
	Quantity    int         `json:"quantity"`
	Price       string      `json:"price"` // display label, e.g. "Free" or "$15"
	Total       float64     `json:"total"`
	Address     string      `json:"address"`
	Date        string      `json:"date"`
	Phone       string      `json:"phone"`
	Notes       string      `json:"notes,omitempty"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// IsOpen reports whether the order still awaits fulfilment.
func (o *Order) IsOpen() bool {
	return o.Status == StatusPending || o.Status == StatusAdoptionRequested
}

// UserMetadata holds account timestamps reported by the identity provider.
type UserMetadata struct {
	CreationTime   string `json:"creationTime,omitempty"   yaml:"creation_time,omitempty"`
	LastSignInTime string `json:"lastSignInTime,omitempty" yaml:"last_sign_in_time,omitempty"`
}

// UserProfile is the signed-in user as reported by the identity provider.
type UserProfile struct {
	UID           string       `json:"uid"                   yaml:"uid"`
	Email         string       `json:"email"                 yaml:"email"`
	DisplayName   string       `json:"displayName,omitempty" yaml:"display_name,omitempty"`
	PhotoURL      string       `json:"photoURL,omitempty"    yaml:"photo_url,omitempty"`
	EmailVerified bool         `json:"emailVerified"         yaml:"email_verified"`
	Metadata      UserMetadata `json:"metadata"              yaml:"metadata"`
}

// Name returns the display name, falling back to "User".
func (p *UserProfile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return "User"
}

// UpdateResult is returned by PUT /listings/:id.
type UpdateResult struct {
	Success bool `json:"success"`
}

// DeleteResult is returned by DELETE /listings/:id.
type DeleteResult struct {
	DeletedCount int `json:"deletedCount"`
}

// OrderResult is returned by POST /orders.
type OrderResult struct {
	InsertedID string `json:"insertedId"`
}
