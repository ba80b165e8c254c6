package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pawmart/pawmart/internal/metrics"
	"github.com/pawmart/pawmart/pkg/catalog"
	"github.com/pawmart/pawmart/pkg/dashboard"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// MemoryStore implements Store in process memory. Listings keep insertion
// order.
type MemoryStore struct {
	mu       sync.RWMutex
	listings []domain.Listing
	orders   []domain.Order
	now      func() time.Time
}

// NewMemoryStore creates a store seeded with f, which may be nil.
func NewMemoryStore(f *Fixture, now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	s := &MemoryStore{now: now}
	if f != nil {
		s.listings = slices.Clone(f.Listings)
		s.orders = slices.Clone(f.Orders)
	}
	s.updateGauges()
	return s
}

// Ping always succeeds.
func (*MemoryStore) Ping(context.Context) error { return nil }

// ListListings returns listings narrowed to q.Category. A positive q.Limit
// returns the newest q.Limit listings instead of insertion order.
func (s *MemoryStore) ListListings(_ context.Context, q *ListingQuery) ([]domain.Listing, error) {
	if q == nil {
		q = &ListingQuery{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := catalog.FilterByCategory(s.listings, q.Category)
	if q.Limit > 0 {
		out = catalog.SortListings(out, catalog.SortNewest)
		out = out[:min(q.Limit, len(out))]
	}
	return slices.Clone(out), nil
}

// ListListingsByOwner returns the listings created by email.
func (s *MemoryStore) ListListingsByOwner(_ context.Context, email string) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dashboard.OwnedBy(s.listings, email), nil
}

// ListCategories returns the distinct categories in first-seen order.
func (s *MemoryStore) ListCategories(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.DeriveCategoryOptions(s.listings), nil
}

// GetListing returns the listing with id.
func (s *MemoryStore) GetListing(_ context.Context, id string) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	l := s.listings[i]
	return &l, nil
}

// CreateListing assigns an ID and creation time to l and stores a copy.
func (s *MemoryStore) CreateListing(_ context.Context, l *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = &created
	s.listings = append(s.listings, *l)
	s.updateGaugesLocked()
	return nil
}

// UpdateListing applies u to the listing with id.
func (s *MemoryStore) UpdateListing(_ context.Context, id string, u *domain.ListingUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	u.Apply(&s.listings[i])
	return nil
}

// DeleteListing removes the listing with id and returns how many records
// were removed (0 or 1).
func (s *MemoryStore) DeleteListing(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	s.listings = slices.Delete(s.listings, i, i+1)
	s.updateGaugesLocked()
	return 1, nil
}

// ListOrders returns the orders placed by email.
func (s *MemoryStore) ListOrders(_ context.Context, email string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dashboard.PlacedBy(s.orders, email), nil
}

// CreateOrder assigns an ID to o and stores a copy. A zero CreatedAt is set
// to the current time.
func (s *MemoryStore) CreateOrder(_ context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = uuid.NewString()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now().UTC()
	}
	s.orders = append(s.orders, *o)
	s.updateGaugesLocked()
	return nil
}

func (s *MemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.listings, func(l domain.Listing) bool { return l.ID == id })
}

func (s *MemoryStore) updateGauges() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.updateGaugesLocked()
}

func (s *MemoryStore) updateGaugesLocked() {
	metrics.DevStoreListings.Set(float64(len(s.listings)))
	metrics.DevStoreOrders.Set(float64(len(s.orders)))
}
