package catalog

import (
	domain "github.com/pawmart/pawmart/pkg/types"
)

// State is the user's current filter, sort and page selection. It is a
// value: every With method returns an updated copy.
type State struct {
	Category string  `json:"category"`
	Sort     SortKey `json:"sort"`
	Search   string  `json:"search,omitempty"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

// NewState returns the state a listing view starts with: all categories,
// newest first, page one.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		Category: domain.CategoryAll,
		Sort:     SortNewest,
		Page:     1,
		PageSize: pageSize,
	}
}

// WithCategory selects a category and returns to the first page.
func (s State) WithCategory(category string) State {
	if category == "" {
		category = domain.CategoryAll
	}
	s.Category = category
	s.Page = 1
	return s
}

// WithSort selects a sort key and returns to the first page.
func (s State) WithSort(key SortKey) State {
	s.Sort = key
	s.Page = 1
	return s
}

// WithSearch sets the name search and returns to the first page.
func (s State) WithSearch(query string) State {
	s.Search = query
	s.Page = 1
	return s
}

// WithPage selects a page. Out-of-range pages are clamped by Derive.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// View is the derived, render-ready shape of a listing collection.
type View struct {
	Page
	State      State      `json:"state"`
	Categories []string   `json:"categories"`
	Links      []PageLink `json:"links"`
}

// Derive applies s to listings: category filter, name search, sort, then
// pagination. The returned State carries the clamped page.
func Derive(listings []domain.Listing, s State) View {
	filtered := FilterByCategory(listings, s.Category)
	filtered = SearchByName(filtered, s.Search)
	sorted := SortListings(filtered, s.Sort)

	page := Paginate(sorted, s.Page, s.PageSize)
	s.Page = page.Page
	s.PageSize = page.PageSize

	return View{
		Page:       page,
		State:      s,
		Categories: DeriveCategoryOptions(listings),
		Links:      PageWindow(page.Page, page.TotalPages),
	}
}
