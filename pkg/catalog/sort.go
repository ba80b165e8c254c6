package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// SortKey selects the ordering of a listing collection.
type SortKey string

// Sort key constants.
const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "priceLow"
	SortPriceHigh SortKey = "priceHigh"
	SortNameAZ    SortKey = "nameAZ"
	SortNameZA    SortKey = "nameZA"
)

// SortKeys lists every supported key in menu order.
var SortKeys = []SortKey{
	SortNewest, SortOldest, SortPriceLow, SortPriceHigh, SortNameAZ, SortNameZA,
}

// ParseSortKey converts a flag value to a SortKey. Matching ignores case and
// accepts dashed forms such as "price-low".
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, "-", ""), "_", ""))
	if norm == "" {
		return SortNewest, nil
	}
	for _, k := range SortKeys {
		if strings.ToLower(string(k)) == norm {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SortListings returns a sorted copy of listings. The sort is stable, so
// listings with equal keys keep their input order. Unknown keys sort newest
// first.
func SortListings(listings []domain.Listing, key SortKey) []domain.Listing {
	out := slices.Clone(listings)
	slices.SortStableFunc(out, comparator(key))
	return out
}

func comparator(key SortKey) func(a, b domain.Listing) int {
	switch key {
	case SortOldest:
		return func(a, b domain.Listing) int {
			return a.CreatedTime().Compare(b.CreatedTime())
		}
	case SortPriceLow:
		return func(a, b domain.Listing) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case SortPriceHigh:
		return func(a, b domain.Listing) int {
			return cmp.Compare(b.Price, a.Price)
		}
	case SortNameAZ:
		c := collate.New(language.Und)
		return func(a, b domain.Listing) int {
			return c.CompareString(a.Name, b.Name)
		}
	case SortNameZA:
		c := collate.New(language.Und)
		return func(a, b domain.Listing) int {
			return c.CompareString(b.Name, a.Name)
		}
	default:
		return func(a, b domain.Listing) int {
			return b.CreatedTime().Compare(a.CreatedTime())
		}
	}
}
