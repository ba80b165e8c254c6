//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pawmart/pawmart/internal/store"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pawmart_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))
	// second run is a no-op
	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestPostgresStore_SeededQueries(t *testing.T) {
	ctx := context.Background()
	s := setupPostgres(t)

	f, err := store.DefaultFixture()
	require.NoError(t, err)
	require.NoError(t, s.Seed(ctx, f))
	// seeding twice skips existing IDs
	require.NoError(t, s.Seed(ctx, f))

	all, err := s.ListListings(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 14)
	assert.Equal(t, "Bella", all[0].Name)

	care, err := s.ListListings(ctx, &store.ListingQuery{Category: "Care Products"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat Litter 10L", "Flea Shampoo", "Dental Chews"}, names(care))

	recent, err := s.ListListings(ctx, &store.ListingQuery{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"Oscar", "Travel Crate", "Parrot"}, names(recent))

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pets", "Foods", "Care Products", "Accessories"}, categories)

	mine, err := s.ListListingsByOwner(ctx, "rina@pawmart.dev")
	require.NoError(t, err)
	assert.Len(t, mine, 5)

	orders, err := s.ListOrders(ctx, "rina@pawmart.dev")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, domain.StatusPending, orders[0].Status)
	assert.InDelta(t, 25.0, orders[0].Total, 0.001)
}

func TestPostgresStore_ListingLifecycle(t *testing.T) {
	ctx := context.Background()
	s := setupPostgres(t)

	l := &domain.Listing{
		Name:     "Hamster Wheel",
		Category: "Accessories",
		Price:    14.5,
		Location: "Sylhet",
		Email:    "nadia@pawmart.dev",
	}
	require.NoError(t, s.CreateListing(ctx, l))
	require.NotEmpty(t, l.ID)

	got, err := s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hamster Wheel", got.Name)
	assert.InDelta(t, 14.5, got.Price, 0.001)
	require.NotNil(t, got.CreatedAt)
	assert.WithinDuration(t, *l.CreatedAt, *got.CreatedAt, time.Millisecond)

	name := "Silent Hamster Wheel"
	require.NoError(t, s.UpdateListing(ctx, l.ID, &domain.ListingUpdate{Name: &name}))
	got, err = s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, "Sylhet", got.Location)

	n, err := s.DeleteListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.GetListing(ctx, l.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.UpdateListing(ctx, l.ID, &domain.ListingUpdate{Name: &name}), store.ErrNotFound)
}

func TestPostgresStore_CreateOrder(t *testing.T) {
	ctx := context.Background()
	s := setupPostgres(t)

	o := &domain.Order{
		BuyerName:   "Nadia Rahman",
		Email:       "nadia@pawmart.dev",
		ProductID:   "665f1a000000000000000002",
		ProductName: "Milo",
		Category:    "Pets",
		Quantity:    1,
		Price:       "Free",
		Status:      domain.StatusAdoptionRequested,
	}
	require.NoError(t, s.CreateOrder(ctx, o))
	assert.NotEmpty(t, o.ID)
	assert.False(t, o.CreatedAt.IsZero())

	orders, err := s.ListOrders(ctx, "nadia@pawmart.dev")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusAdoptionRequested, orders[0].Status)
}
