package catalog

import (
	"slices"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// DefaultPageSize is the number of listings per page on the listing pages.
const DefaultPageSize = 12

// Page is one page of a listing collection with its pagination metadata.
type Page struct {
	Items      []domain.Listing `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	TotalCount int              `json:"total_count"`
}

// TotalPages returns ceil(count/pageSize), never less than one.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	return max(1, pages)
}

// ClampPage moves page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	return min(max(1, page), max(1, totalPages))
}

// Paginate returns the listings in [(page-1)*pageSize, page*pageSize). The
// page is clamped into range first, and a non-positive pageSize falls back
// to DefaultPageSize. Items is a copy.
func Paginate(listings []domain.Listing, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := TotalPages(len(listings), pageSize)
	page = ClampPage(page, total)

	start := min((page-1)*pageSize, len(listings))
	end := min(start+pageSize, len(listings))

	return Page{
		Items:      slices.Clone(listings[start:end]),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: total,
		TotalCount: len(listings),
	}
}

// PageLink is one entry of a pagination control: a page number, or a gap
// marker rendered as an ellipsis.
type PageLink struct {
	Number  int  `json:"number"`
	Current bool `json:"current,omitempty"`
	Gap     bool `json:"gap,omitempty"`
}

// PageWindow returns the pagination controls for current of total pages:
// the first and last page, the pages next to current, and a gap marker two
// pages either side of current.
func PageWindow(current, total int) []PageLink {
	total = max(1, total)
	current = ClampPage(current, total)

	links := make([]PageLink, 0, 7)
	for n := 1; n <= total; n++ {
		switch {
		case n == 1 || n == total || (n >= current-1 && n <= current+1):
			links = append(links, PageLink{Number: n, Current: n == current})
		case n == current-2 || n == current+2:
			links = append(links, PageLink{Number: n, Gap: true})
		}
	}
	return links
}
