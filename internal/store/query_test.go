package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ListingQuery
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in the SQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:          "empty query keeps insertion order",
			query:         ListingQuery{},
			wantDataHas:   []string{"FROM listings", "ORDER BY seq ASC"},
			wantDataNotIn: []string{"WHERE", "LIMIT"},
		},
		{
			name:          "All matches every category",
			query:         ListingQuery{Category: "All"},
			wantDataNotIn: []string{"WHERE"},
		},
		{
			name:        "category filter",
			query:       ListingQuery{Category: "Care Products"},
			wantDataHas: []string{"WHERE category = $1", "ORDER BY seq ASC"},
			wantArgs:    []any{"Care Products"},
		},
		{
			name:          "limit sorts newest first",
			query:         ListingQuery{Limit: 6},
			wantDataHas:   []string{"created_at", "DESC", "LIMIT 6"},
			wantDataNotIn: []string{"WHERE"},
		},
		{
			name:        "limit is capped",
			query:       ListingQuery{Limit: 10_000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "category with limit",
			query:       ListingQuery{Category: "Pets", Limit: 3},
			wantDataHas: []string{"WHERE category = $1", "LIMIT 3"},
			wantArgs:    []any{"Pets"},
		},
		{
			name:          "negative limit is ignored",
			query:         ListingQuery{Limit: -1},
			wantDataNotIn: []string{"LIMIT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, sql, s)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
