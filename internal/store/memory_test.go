package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawmart/pawmart/internal/metrics"
	"github.com/pawmart/pawmart/internal/store"
	domain "github.com/pawmart/pawmart/pkg/types"
)

var fixedNow = time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	f, err := store.DefaultFixture()
	require.NoError(t, err)
	return store.NewMemoryStore(f, func() time.Time { return fixedNow })
}

func names(listings []domain.Listing) []string {
	out := make([]string, len(listings))
	for i := range listings {
		out[i] = listings[i].Name
	}
	return out
}

func TestDefaultFixture(t *testing.T) {
	t.Parallel()

	f, err := store.DefaultFixture()
	require.NoError(t, err)
	require.Len(t, f.Listings, 14)
	require.Len(t, f.Orders, 2)

	// price arrives as a string in one record
	var litter domain.Listing
	for _, l := range f.Listings {
		if l.Name == "Cat Litter 10L" {
			litter = l
		}
	}
	assert.InDelta(t, 12.5, litter.Price, 0.001)
}

func TestParseFixture_Invalid(t *testing.T) {
	t.Parallel()

	_, err := store.ParseFixture([]byte(`{"listings": 3`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing fixture")
}

func TestLoadFixture_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := store.LoadFixture(t.TempDir() + "/nope.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading fixture")
}

func TestMemoryStore_ListListings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query *store.ListingQuery
		want  []string
		count int
	}{
		{
			name:  "nil query lists everything",
			query: nil,
			count: 14,
		},
		{
			name:  "All lists everything",
			query: &store.ListingQuery{Category: "All"},
			count: 14,
		},
		{
			name:  "category keeps insertion order",
			query: &store.ListingQuery{Category: "Care Products"},
			want:  []string{"Cat Litter 10L", "Flea Shampoo", "Dental Chews"},
		},
		{
			name:  "limit returns newest",
			query: &store.ListingQuery{Limit: 3},
			want:  []string{"Oscar", "Travel Crate", "Parrot"},
		},
		{
			name:  "limit larger than collection",
			query: &store.ListingQuery{Category: "Foods", Limit: 10},
			want:  []string{"Premium Dog Food 5kg", "Kitten Wet Food (12 pack)", "Bird Seed Mix"},
		},
		{
			name:  "unknown category",
			query: &store.ListingQuery{Category: "Reptiles"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newSeededStore(t)
			got, err := s.ListListings(context.Background(), tt.query)
			require.NoError(t, err)

			if tt.want != nil {
				assert.Equal(t, tt.want, names(got))
			} else {
				assert.Len(t, got, tt.count)
			}
		})
	}
}

func TestMemoryStore_ListingWithoutCreatedAtSortsLast(t *testing.T) {
	t.Parallel()

	s := newSeededStore(t)
	got, err := s.ListListings(context.Background(), &store.ListingQuery{Limit: 14})
	require.NoError(t, err)
	require.Len(t, got, 14)
	assert.Equal(t, "Luna", got[13].Name)
}

func TestMemoryStore_OwnerAndCategories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newSeededStore(t)

	mine, err := s.ListListingsByOwner(ctx, "rina@pawmart.dev")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Bella", "Premium Dog Food 5kg", "Leather Collar", "Flea Shampoo", "Dental Chews"},
		names(mine),
	)

	none, err := s.ListListingsByOwner(ctx, "nobody@pawmart.dev")
	require.NoError(t, err)
	assert.Empty(t, none)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pets", "Foods", "Care Products", "Accessories"}, categories)
}

func TestMemoryStore_ListingLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(nil, func() time.Time { return fixedNow })

	l := &domain.Listing{Name: "Hamster Wheel", Category: "Accessories", Price: 14, Location: "Sylhet"}
	require.NoError(t, s.CreateListing(ctx, l))
	require.NotEmpty(t, l.ID)
	require.NotNil(t, l.CreatedAt)
	assert.Equal(t, fixedNow, *l.CreatedAt)

	got, err := s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hamster Wheel", got.Name)

	price := 12.0
	require.NoError(t, s.UpdateListing(ctx, l.ID, &domain.ListingUpdate{Price: &price}))
	got, err = s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got.Price, 0)
	assert.Equal(t, "Hamster Wheel", got.Name)

	// callers cannot mutate stored records through returned values
	got.Name = "changed"
	again, err := s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hamster Wheel", again.Name)

	n, err := s.DeleteListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.DeleteListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.GetListing(ctx, l.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.UpdateListing(ctx, l.ID, &domain.ListingUpdate{Price: &price}), store.ErrNotFound)
}

func TestMemoryStore_Orders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newSeededStore(t)

	orders, err := s.ListOrders(ctx, "rina@pawmart.dev")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	o := &domain.Order{
		BuyerName:   "Arif Hasan",
		Email:       "arif@pawmart.dev",
		ProductID:   "665f1a000000000000000003",
		ProductName: "Premium Dog Food 5kg",
		Quantity:    2,
		Price:       "$45",
		Total:       90,
		Status:      domain.StatusPending,
	}
	require.NoError(t, s.CreateOrder(ctx, o))
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, fixedNow, o.CreatedAt)

	orders, err = s.ListOrders(ctx, "arif@pawmart.dev")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID, orders[0].ID)
}

func TestMemoryStore_Gauges(t *testing.T) {
	// Not parallel: reads package-level gauges.
	ctx := context.Background()
	s := store.NewMemoryStore(nil, nil)
	assert.InDelta(t, 0.0, testutil.ToFloat64(metrics.DevStoreListings), 0)

	require.NoError(t, s.CreateListing(ctx, &domain.Listing{Name: "Bowl"}))
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.DevStoreListings), 0)

	require.NoError(t, s.CreateOrder(ctx, &domain.Order{Email: "a@b.c"}))
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.DevStoreOrders), 0)

	require.NoError(t, s.Ping(ctx))
}
