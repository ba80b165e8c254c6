package store

import (
	"fmt"

	domain "github.com/pawmart/pawmart/pkg/types"
)

const maxLimit = 500

const baseListingsSelect = `SELECT id, name, category, price::float8, location,
	image, description, date, email, created_at
FROM listings`

const (
	orderByInsertion = "seq ASC"
	orderByNewest    = "COALESCE(created_at, 'epoch'::timestamptz) DESC, seq ASC"
)

// ToSQL builds the listing query and its positional parameters. Without a
// limit rows come back in insertion order; with one, newest first.
func (q *ListingQuery) ToSQL() (sql string, args []any) {
	sql = baseListingsSelect

	if q.Category != "" && q.Category != domain.CategoryAll {
		sql += " WHERE category = $1"
		args = append(args, q.Category)
	}

	if q.Limit <= 0 {
		return sql + " ORDER BY " + orderByInsertion, args
	}

	limit := min(q.Limit, maxLimit)
	return fmt.Sprintf("%s ORDER BY %s LIMIT %d", sql, orderByNewest, limit), args
}
