package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/pawmart/pawmart/pkg/types"
)

func at(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func scenarioListings() []domain.Listing {
	return []domain.Listing{
		{ID: "bella", Name: "Bella", Category: "Pets", Price: 0, CreatedAt: at("2024-01-01")},
		{ID: "leash", Name: "Leash", Category: "Accessories", Price: 15, CreatedAt: at("2024-02-01")},
	}
}

func mixedListings() []domain.Listing {
	return []domain.Listing{
		{ID: "1", Name: "kibble", Category: "Foods", Price: 20, CreatedAt: at("2024-03-01")},
		{ID: "2", Name: "Bella", Category: "Pets", Price: 0, CreatedAt: at("2024-01-01")},
		{ID: "3", Name: "Leash", Category: "Accessories", Price: 15},
		{ID: "4", Name: "Shampoo", Category: "Care Products", Price: 15, CreatedAt: at("2024-01-01")},
		{ID: "5", Name: "Max", Category: "Pets", Price: 50, CreatedAt: at("2024-05-01")},
		{ID: "6", Name: "", Category: "Foods"},
		{ID: "7", Name: "Élan Collar", Category: "Accessories", Price: 8, CreatedAt: at("2023-12-01")},
	}
}

func ids(listings []domain.Listing) []string {
	out := make([]string, len(listings))
	for i := range listings {
		out[i] = listings[i].ID
	}
	return out
}

func numbered(n int) []domain.Listing {
	out := make([]domain.Listing, n)
	for i := range out {
		out[i] = domain.Listing{ID: fmt.Sprintf("l%02d", i), Name: fmt.Sprintf("Item %02d", i), Category: "Foods"}
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "all sentinel keeps everything", category: "All", want: []string{"1", "2", "3", "4", "5", "6", "7"}},
		{name: "empty category keeps everything", category: "", want: []string{"1", "2", "3", "4", "5", "6", "7"}},
		{name: "pets preserves relative order", category: "Pets", want: []string{"2", "5"}},
		{name: "no match returns empty", category: "Birds", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterByCategory(mixedListings(), tt.category)
			assert.Equal(t, tt.want, ids(got))
			for i := range got {
				if tt.category != "All" && tt.category != "" {
					assert.Equal(t, tt.category, got[i].Category)
				}
			}
		})
	}
}

func TestSearchByName(t *testing.T) {
	t.Parallel()

	got := SearchByName(mixedListings(), "  LEA ")
	assert.Equal(t, []string{"3"}, ids(got))

	assert.Len(t, SearchByName(mixedListings(), ""), 7)
}

func TestSortListings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  SortKey
		want []string
	}{
		// Listings 2 and 4 share a date, 3 and 6 have none (epoch).
		{key: SortNewest, want: []string{"5", "1", "2", "4", "7", "3", "6"}},
		{key: SortOldest, want: []string{"3", "6", "7", "2", "4", "1", "5"}},
		{key: SortPriceLow, want: []string{"2", "6", "7", "3", "4", "1", "5"}},
		{key: SortPriceHigh, want: []string{"5", "1", "3", "4", "7", "2", "6"}},
		{key: SortNameAZ, want: []string{"6", "2", "7", "1", "3", "5", "4"}},
		{key: SortNameZA, want: []string{"4", "5", "3", "1", "7", "2", "6"}},
		{key: SortKey("bogus"), want: []string{"5", "1", "2", "4", "7", "3", "6"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()
			input := mixedListings()
			before := ids(input)

			got := SortListings(input, tt.key)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, before, ids(input), "input must not be mutated")
			assert.ElementsMatch(t, before, ids(got), "result must be a permutation")

			again := SortListings(got, tt.key)
			assert.Equal(t, ids(got), ids(again), "sorting must be idempotent")
		})
	}
}

func TestSortListings_Scenario(t *testing.T) {
	t.Parallel()

	got := SortListings(scenarioListings(), SortPriceLow)
	require.Len(t, got, 2)
	assert.Equal(t, "Bella", got[0].Name)
	assert.Equal(t, "Leash", got[1].Name)
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{input: "", want: SortNewest},
		{input: "newest", want: SortNewest},
		{input: "priceLow", want: SortPriceLow},
		{input: "price-high", want: SortPriceHigh},
		{input: "name_az", want: SortNameAZ},
		{input: "NAMEZA", want: SortNameZA},
		{input: "cheapest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		count     int
		page      int
		pageSize  int
		wantPage  int
		wantPages int
		wantItems int
	}{
		{name: "empty collection has one page", count: 0, page: 1, pageSize: 12, wantPage: 1, wantPages: 1, wantItems: 0},
		{name: "fits in one page", count: 12, page: 1, pageSize: 12, wantPage: 1, wantPages: 1, wantItems: 12},
		{name: "25 items last page holds one", count: 25, page: 3, pageSize: 12, wantPage: 3, wantPages: 3, wantItems: 1},
		{name: "page above range clamps to last", count: 25, page: 9, pageSize: 12, wantPage: 3, wantPages: 3, wantItems: 1},
		{name: "page below range clamps to first", count: 25, page: -2, pageSize: 12, wantPage: 1, wantPages: 3, wantItems: 12},
		{name: "zero page size uses default", count: 13, page: 2, pageSize: 0, wantPage: 2, wantPages: 2, wantItems: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Paginate(numbered(tt.count), tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Len(t, p.Items, tt.wantItems)
			assert.Equal(t, tt.count, p.TotalCount)
		})
	}
}

func TestPaginate_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 11, 12, 13, 24, 25, 100} {
		listings := numbered(n)
		total := TotalPages(n, 12)

		var rebuilt []domain.Listing
		for p := 1; p <= total; p++ {
			rebuilt = append(rebuilt, Paginate(listings, p, 12).Items...)
		}
		assert.Equal(t, ids(listings), ids(rebuilt), "count=%d", n)
	}
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	listings := numbered(3)
	p := Paginate(listings, 1, 12)
	p.Items[0].Name = "changed"
	assert.Equal(t, "Item 00", listings[0].Name)
}

func TestDeriveCategoryOptions(t *testing.T) {
	t.Parallel()

	got := DeriveCategoryOptions(mixedListings())
	assert.Equal(t, []string{"Foods", "Pets", "Accessories", "Care Products"}, got)

	assert.Empty(t, DeriveCategoryOptions(nil))
}

func TestComputeExtractTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		category  string
		want      float64
	}{
		{name: "multiplies quantity", unitPrice: 15, quantity: 3, category: "Accessories", want: 45},
		{name: "single unit", unitPrice: 15, quantity: 1, category: "Foods", want: 15},
		{name: "pets always one", unitPrice: 50, quantity: 5, category: "Pets", want: 50},
		{name: "zero quantity clamps to one", unitPrice: 15, quantity: 0, category: "Accessories", want: 15},
		{name: "negative quantity clamps to one", unitPrice: 12.5, quantity: -4, category: "Care Products", want: 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ComputeExtractTotal(tt.unitPrice, tt.quantity, tt.category), 0.001)
		})
	}
}

func TestPageWindow(t *testing.T) {
	t.Parallel()

	render := func(links []PageLink) string {
		var s string
		for _, l := range links {
			switch {
			case l.Gap:
				s += "… "
			case l.Current:
				s += fmt.Sprintf("[%d] ", l.Number)
			default:
				s += fmt.Sprintf("%d ", l.Number)
			}
		}
		return s
	}

	tests := []struct {
		current, total int
		want           string
	}{
		{current: 1, total: 1, want: "[1] "},
		{current: 1, total: 3, want: "[1] 2 3 "},
		{current: 1, total: 10, want: "[1] 2 … 10 "},
		{current: 5, total: 10, want: "1 … 4 [5] 6 … 10 "},
		{current: 10, total: 10, want: "1 … 9 [10] "},
		{current: 3, total: 10, want: "1 2 [3] 4 … 10 "},
		{current: 42, total: 4, want: "1 … 3 [4] "},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.current, tt.total), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(PageWindow(tt.current, tt.total)))
		})
	}
}

func TestState_ResetsPage(t *testing.T) {
	t.Parallel()

	s := NewState(12).WithPage(3)
	assert.Equal(t, 3, s.Page)

	assert.Equal(t, 1, s.WithCategory("Pets").Page)
	assert.Equal(t, 1, s.WithSort(SortPriceHigh).Page)
	assert.Equal(t, 1, s.WithSearch("bell").Page)
	assert.Equal(t, "All", s.WithCategory("").Category)
}

func TestDerive(t *testing.T) {
	t.Parallel()

	t.Run("scenario category filter", func(t *testing.T) {
		t.Parallel()
		v := Derive(scenarioListings(), NewState(12).WithCategory("Pets"))
		assert.Equal(t, []string{"bella"}, ids(v.Items))
		assert.Equal(t, 1, v.TotalPages)
		assert.Equal(t, 1, v.TotalCount)
		assert.Equal(t, []string{"Pets", "Accessories"}, v.Categories)
	})

	t.Run("clamps page into range", func(t *testing.T) {
		t.Parallel()
		v := Derive(numbered(25), NewState(12).WithPage(7))
		assert.Equal(t, 3, v.State.Page)
		assert.Len(t, v.Items, 1)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		v := Derive(nil, NewState(0))
		assert.Empty(t, v.Items)
		assert.Equal(t, 1, v.TotalPages)
		assert.Equal(t, 1, v.State.Page)
		assert.Equal(t, DefaultPageSize, v.State.PageSize)
	})

	t.Run("search then sort", func(t *testing.T) {
		t.Parallel()
		v := Derive(mixedListings(), NewState(12).WithSearch("a").WithSort(SortPriceHigh))
		assert.Equal(t, []string{"5", "3", "4", "7", "2"}, ids(v.Items))
	})
}
