// Package dashboard aggregates a seller's listings and orders into the
// summary figures shown on the dashboard page.
package dashboard

import (
	"time"

	"github.com/pawmart/pawmart/pkg/catalog"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// DefaultMonths is the width of the monthly listings chart.
const DefaultMonths = 6

// Stats holds the headline counters.
type Stats struct {
	TotalListings int     `json:"total_listings"`
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	Revenue       float64 `json:"revenue"`
}

// CategoryCount is one slice of the listings-by-category chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthCount is one bar of the listings-by-month chart.
type MonthCount struct {
	Month    time.Time `json:"month"` // first instant of the month, UTC
	Label    string    `json:"label"` // e.g. "Jan"
	Listings int       `json:"listings"`
	Orders   int       `json:"orders"`
}

// Summary is the full dashboard view-model.
type Summary struct {
	Stats      Stats           `json:"stats"`
	Categories []CategoryCount `json:"categories"`
	Monthly    []MonthCount    `json:"monthly"`
}

// Summarize builds the dashboard for listings and orders that already
// belong to one user. The monthly series covers the months months ending
// with the month containing now.
func Summarize(listings []domain.Listing, orders []domain.Order, now time.Time, months int) Summary {
	return Summary{
		Stats:      ComputeStats(listings, orders),
		Categories: CountByCategory(listings),
		Monthly:    CountByMonth(listings, orders, now, months),
	}
}

// ComputeStats counts listings and orders. Pending covers both purchase and
// adoption requests awaiting fulfilment; revenue sums order totals.
func ComputeStats(listings []domain.Listing, orders []domain.Order) Stats {
	s := Stats{
		TotalListings: len(listings),
		TotalOrders:   len(orders),
	}
	for i := range orders {
		if orders[i].IsOpen() {
			s.PendingOrders++
		}
		s.Revenue += orders[i].Total
	}
	return s
}

// CountByCategory returns per-category listing counts in first-seen order.
func CountByCategory(listings []domain.Listing) []CategoryCount {
	counts := make(map[string]int)
	for i := range listings {
		counts[listings[i].Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for _, name := range catalog.DeriveCategoryOptions(listings) {
		out = append(out, CategoryCount{Name: name, Value: counts[name]})
	}
	return out
}

// CountByMonth buckets listing and order creation times into the last
// months calendar months. Listings without a timestamp fall in no bucket.
func CountByMonth(listings []domain.Listing, orders []domain.Order, now time.Time, months int) []MonthCount {
	if months <= 0 {
		months = DefaultMonths
	}

	now = now.UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := make([]MonthCount, months)
	index := make(map[time.Time]int, months)
	for i := range out {
		m := current.AddDate(0, i-months+1, 0)
		out[i] = MonthCount{Month: m, Label: m.Format("Jan")}
		index[m] = i
	}

	bucket := func(t time.Time) (int, bool) {
		t = t.UTC()
		i, ok := index[time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)]
		return i, ok
	}

	for i := range listings {
		if listings[i].CreatedAt == nil {
			continue
		}
		if b, ok := bucket(*listings[i].CreatedAt); ok {
			out[b].Listings++
		}
	}
	for i := range orders {
		if orders[i].CreatedAt.IsZero() {
			continue
		}
		if b, ok := bucket(orders[i].CreatedAt); ok {
			out[b].Orders++
		}
	}
	return out
}

// OwnedBy returns the listings whose owner email is email.
func OwnedBy(listings []domain.Listing, email string) []domain.Listing {
	out := make([]domain.Listing, 0)
	for i := range listings {
		if listings[i].Email == email {
			out = append(out, listings[i])
		}
	}
	return out
}

// PlacedBy returns the orders whose buyer email is email.
func PlacedBy(orders []domain.Order, email string) []domain.Order {
	out := make([]domain.Order, 0)
	for i := range orders {
		if orders[i].Email == email {
			out = append(out, orders[i])
		}
	}
	return out
}
