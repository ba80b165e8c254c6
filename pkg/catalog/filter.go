// Package catalog derives presentation-ready listing pages from a raw
// listing collection and the user's filter, sort and page selection.
//
// Every function is pure: inputs are never mutated and the same inputs
// always produce the same output.
package catalog

import (
	"strings"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// FilterByCategory returns the listings in category, preserving order.
// The "All" sentinel (or an empty category) matches everything.
func FilterByCategory(listings []domain.Listing, category string) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if category == "" || category == domain.CategoryAll || listings[i].Category == category {
			out = append(out, listings[i])
		}
	}
	return out
}

// SearchByName returns the listings whose name contains query, ignoring
// case and surrounding whitespace. An empty query matches everything.
func SearchByName(listings []domain.Listing, query string) []domain.Listing {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if q == "" || strings.Contains(strings.ToLower(listings[i].Name), q) {
			out = append(out, listings[i])
		}
	}
	return out
}

// DeriveCategoryOptions returns the distinct categories present in listings
// in first-seen order. Listings without a category are skipped.
func DeriveCategoryOptions(listings []domain.Listing) []string {
	seen := make(map[string]struct{}, len(listings))
	out := make([]string, 0)
	for i := range listings {
		c := listings[i].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// ComputeExtractTotal returns unitPrice times quantity. Pets are adopted one
// per request, so their total is always unitPrice. Quantity is clamped to a
// minimum of 1 for every category, so a zero or negative quantity prices a
// single unit. Callers that accept user input reject such quantities first
// (see orderform.Derive).
func ComputeExtractTotal(unitPrice float64, quantity int, category string) float64 {
	if category == domain.CategoryPets {
		return unitPrice
	}
	return unitPrice * float64(max(quantity, 1))
}
