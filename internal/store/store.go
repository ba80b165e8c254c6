// Package store defines the datastore abstraction behind the PawMart dev
// server. Handlers depend on the Store interface, never on a concrete
// implementation, so they can be tested against mocks.
package store

import (
	"context"
	"errors"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// ErrNotFound is returned when a listing ID does not exist.
var ErrNotFound = errors.New("listing not found")

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Category string // empty or "All" matches every category
	Limit    int    // > 0 returns the newest Limit listings
}

// Store defines all data access operations of the dev server.
type Store interface {
	// Listings
	ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, error)
	ListListingsByOwner(ctx context.Context, email string) ([]domain.Listing, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	CreateListing(ctx context.Context, l *domain.Listing) error
	UpdateListing(ctx context.Context, id string, u *domain.ListingUpdate) error
	DeleteListing(ctx context.Context, id string) (int, error)

	// Orders
	ListOrders(ctx context.Context, email string) ([]domain.Order, error)
	CreateOrder(ctx context.Context, o *domain.Order) error

	// Health
	Ping(ctx context.Context) error
}
