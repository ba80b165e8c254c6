package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawmart/pawmart/internal/metrics"
	domain "github.com/pawmart/pawmart/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// Seed inserts the fixture records, keeping their IDs so seeded orders
// still reference seeded listings. Existing IDs are skipped.
func (s *PostgresStore) Seed(ctx context.Context, f *Fixture) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for i := range f.Listings {
		l := f.Listings[i]
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		if _, err := tx.Exec(ctx, queryInsertListing, listingArgs(&l)); err != nil {
			return fmt.Errorf("seeding listing %q: %w", l.Name, err)
		}
	}
	for i := range f.Orders {
		o := f.Orders[i]
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		if _, err := tx.Exec(ctx, queryInsertOrder, orderArgs(&o)); err != nil {
			return fmt.Errorf("seeding order %q: %w", o.ProductName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	s.updateGauges(ctx)
	return nil
}

// ListListings queries listings with an optional category and limit.
func (s *PostgresStore) ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, error) {
	if q == nil {
		q = &ListingQuery{}
	}
	sql, args := q.ToSQL()
	return s.queryListings(ctx, sql, args...)
}

// ListListingsByOwner returns the listings created by email.
func (s *PostgresStore) ListListingsByOwner(ctx context.Context, email string) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryListListingsByOwner, email)
}

// ListCategories returns the distinct categories in first-seen order.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListCategories)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// GetListing retrieves a listing by ID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := scanListing(s.pool.QueryRow(ctx, queryGetListing, id), l)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting listing: %w", err)
	}
	return l, nil
}

// CreateListing inserts l, assigning its ID and creation time.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	created := time.Now().UTC().Truncate(time.Microsecond)
	l.ID = uuid.NewString()
	l.CreatedAt = &created
	if _, err := s.pool.Exec(ctx, queryInsertListing, listingArgs(l)); err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}
	s.updateGauges(ctx)
	return nil
}

// UpdateListing applies the set fields of u to the listing with id.
func (s *PostgresStore) UpdateListing(ctx context.Context, id string, u *domain.ListingUpdate) error {
	tag, err := s.pool.Exec(ctx, queryUpdateListing, pgx.NamedArgs{
		"id":          id,
		"name":        u.Name,
		"category":    u.Category,
		"price":       u.Price,
		"location":    u.Location,
		"image":       u.Image,
		"description": u.Description,
		"date":        u.Date,
	})
	if err != nil {
		return fmt.Errorf("updating listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteListing removes the listing with id and returns the number of rows
// removed.
func (s *PostgresStore) DeleteListing(ctx context.Context, id string) (int, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteListing, id)
	if err != nil {
		return 0, fmt.Errorf("deleting listing: %w", err)
	}
	s.updateGauges(ctx)
	return int(tag.RowsAffected()), nil
}

// ListOrders returns the orders placed by email.
func (s *PostgresStore) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, queryListOrders, email)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.BuyerName, &o.Email, &o.ProductID, &o.ProductName, &o.Category,
			&o.Quantity, &o.Price, &o.Total, &o.Address, &o.Date, &o.Phone, &o.Notes,
			&o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CreateOrder inserts o, assigning its ID. A zero CreatedAt is set to the
// current time.
func (s *PostgresStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	o.ID = uuid.NewString()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if _, err := s.pool.Exec(ctx, queryInsertOrder, orderArgs(o)); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	s.updateGauges(ctx)
	return nil
}

// queryListings runs a listing query and scans every row.
func (s *PostgresStore) queryListings(ctx context.Context, query string, args ...any) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// updateGauges refreshes the store size gauges. Failures only leave the
// gauges stale.
func (s *PostgresStore) updateGauges(ctx context.Context) {
	var listings, orders int
	if err := s.pool.QueryRow(ctx, queryCountListings).Scan(&listings); err == nil {
		metrics.DevStoreListings.Set(float64(listings))
	}
	if err := s.pool.QueryRow(ctx, queryCountOrders).Scan(&orders); err == nil {
		metrics.DevStoreOrders.Set(float64(orders))
	}
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.Name, &l.Category, &l.Price, &l.Location,
		&l.Image, &l.Description, &l.Date, &l.Email, &l.CreatedAt,
	)
}

func listingArgs(l *domain.Listing) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":          l.ID,
		"name":        l.Name,
		"category":    l.Category,
		"price":       l.Price,
		"location":    l.Location,
		"image":       l.Image,
		"description": l.Description,
		"date":        l.Date,
		"email":       l.Email,
		"created_at":  l.CreatedAt,
	}
}

func orderArgs(o *domain.Order) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":           o.ID,
		"buyer_name":   o.BuyerName,
		"email":        o.Email,
		"product_id":   o.ProductID,
		"product_name": o.ProductName,
		"category":     o.Category,
		"quantity":     o.Quantity,
		"price":        o.Price,
		"total":        o.Total,
		"address":      o.Address,
		"date":         o.Date,
		"phone":        o.Phone,
		"notes":        o.Notes,
		"status":       string(o.Status),
		"created_at":   o.CreatedAt,
	}
}
