package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// ListListingsParams defines query parameters for listing queries. The zero
// value lists everything.
type ListListingsParams struct {
	Category string
	Limit    int
}

// ListListings returns listings, optionally narrowed server-side by category
// or capped by limit.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) ([]domain.Listing, error) {
	q := url.Values{}
	if params != nil {
		if params.Category != "" && params.Category != domain.CategoryAll {
			q.Set("category", params.Category)
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
	}

	path := "/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var listings domain.Listings
	if err := c.get(ctx, path, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// ListRecentListings returns the newest limit listings for the home page.
func (c *Client) ListRecentListings(ctx context.Context, limit int) ([]domain.Listing, error) {
	return c.ListListings(ctx, &ListListingsParams{Limit: limit})
}

// ListMyListings returns the listings owned by email.
func (c *Client) ListMyListings(ctx context.Context, email string) ([]domain.Listing, error) {
	var listings domain.Listings
	if err := c.get(ctx, "/my-listings?"+url.Values{"email": {email}}.Encode(), &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// ListCategories returns the category names known to the server.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetListing returns a single listing by ID. A missing listing yields an
// error matching ErrNotFound.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateListing posts l (its ID is ignored) and returns the created record.
// Servers that answer with only an insertedId get l echoed back with that ID.
func (c *Client) CreateListing(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	body := *l
	body.ID = ""

	var raw json.RawMessage
	if err := c.post(ctx, "/listings", &body, &raw); err != nil {
		return nil, err
	}

	var created domain.Listing
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("decoding created listing: %w", err)
	}
	if created.ID != "" && created.Name != "" {
		return &created, nil
	}

	var ack struct {
		InsertedID string `json:"insertedId"`
	}
	if err := json.Unmarshal(raw, &ack); err != nil || ack.InsertedID == "" {
		return nil, fmt.Errorf("create listing: response carried no id")
	}
	body.ID = ack.InsertedID
	return &body, nil
}

// UpdateListing applies a partial update and reports the server's success
// flag.
func (c *Client) UpdateListing(
	ctx context.Context,
	id string,
	u *domain.ListingUpdate,
) (bool, error) {
	var res domain.UpdateResult
	if err := c.put(ctx, "/listings/"+url.PathEscape(id), u, &res); err != nil {
		return false, err
	}
	return res.Success, nil
}

// DeleteListing deletes a listing and returns the number of records removed.
func (c *Client) DeleteListing(ctx context.Context, id string) (int, error) {
	var res domain.DeleteResult
	if err := c.del(ctx, "/listings/"+url.PathEscape(id), &res); err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
