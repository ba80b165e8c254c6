package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pawmart/pawmart/internal/store"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// ListingsHandler handles the listing endpoints.
type ListingsHandler struct {
	store    store.Store
	verifier Verifier
}

// NewListingsHandler creates a new ListingsHandler. Writes are authorized
// with v.
func NewListingsHandler(s store.Store, v Verifier) *ListingsHandler {
	return &ListingsHandler{store: s, verifier: v}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings.
type ListListingsInput struct {
	Category string `query:"category" doc:"Only listings in this category; All matches every category"`
	Limit    int    `query:"limit"    doc:"Return only the newest N listings"                          minimum:"0" maximum:"500"`
}

// ListingsOutput is a bare JSON array of listings.
type ListingsOutput struct {
	Body []domain.Listing
}

// MyListingsInput is the input for listing one owner's listings.
type MyListingsInput struct {
	Email string `query:"email" required:"true" doc:"Owner email"`
}

// ListingIDInput addresses a single listing.
type ListingIDInput struct {
	ID string `path:"id" doc:"Listing ID"`
}

// ListingOutput is a single listing.
type ListingOutput struct {
	Body domain.Listing
}

// ListingBody is the request body for creating a listing. Unknown fields,
// such as a client-sent _id, are accepted and ignored.
type ListingBody struct {
	_           struct{} `json:"-"                     additionalProperties:"true"`
	Name        string   `json:"name"                  minLength:"1"               doc:"Listing name"`
	Category    string   `json:"category"              minLength:"1"               doc:"Category, e.g. Pets"`
	Price       float64  `json:"price"                 minimum:"0"                 doc:"Unit price; 0 means free"`
	Location    string   `json:"location"                                          doc:"Pickup location"`
	Image       string   `json:"image,omitempty"                                   doc:"Image URL"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"                                    doc:"Available or pickup date"`
	Email       string   `json:"email,omitempty"                                   doc:"Owner email; defaults to the caller"`
}

// CreateListingInput is the input for creating a listing.
type CreateListingInput struct {
	Authorization string `header:"Authorization" doc:"Bearer ID token"`
	Body          ListingBody
}

// UpdateListingInput is the input for a partial listing update.
type UpdateListingInput struct {
	Authorization string `header:"Authorization" doc:"Bearer ID token"`
	ID            string `path:"id"              doc:"Listing ID"`
	Body          domain.ListingUpdate
}

// UpdateListingOutput reports whether the update was applied.
type UpdateListingOutput struct {
	Body domain.UpdateResult
}

// DeleteListingInput is the input for deleting a listing.
type DeleteListingInput struct {
	Authorization string `header:"Authorization" doc:"Bearer ID token"`
	ID            string `path:"id"              doc:"Listing ID"`
}

// DeleteListingOutput reports how many listings were removed.
type DeleteListingOutput struct {
	Body domain.DeleteResult
}

// CategoriesOutput is the list of known categories.
type CategoriesOutput struct {
	Body []string
}

// --- Handlers ---

// ListListings returns every listing in insertion order, optionally narrowed
// to a category. A limit returns the newest listings instead.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListingsOutput, error) {
	listings, err := h.store.ListListings(ctx, &store.ListingQuery{
		Category: input.Category,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}
	return &ListingsOutput{Body: nonNil(listings)}, nil
}

// MyListings returns the listings owned by an email.
func (h *ListingsHandler) MyListings(
	ctx context.Context,
	input *MyListingsInput,
) (*ListingsOutput, error) {
	listings, err := h.store.ListListingsByOwner(ctx, input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}
	return &ListingsOutput{Body: nonNil(listings)}, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *ListingIDInput,
) (*ListingOutput, error) {
	l, err := h.store.GetListing(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("getting listing: " + err.Error())
	}
	return &ListingOutput{Body: *l}, nil
}

// CreateListing stores a new listing owned by the caller and returns the
// full record.
func (h *ListingsHandler) CreateListing(
	ctx context.Context,
	input *CreateListingInput,
) (*ListingOutput, error) {
	who, err := caller(h.verifier, input.Authorization)
	if err != nil {
		return nil, err
	}
	owner, err := ownerEmail(who, input.Body.Email)
	if err != nil {
		return nil, err
	}

	b := input.Body
	l := &domain.Listing{
		Name:        strings.TrimSpace(b.Name),
		Category:    strings.TrimSpace(b.Category),
		Price:       b.Price,
		Location:    strings.TrimSpace(b.Location),
		Image:       b.Image,
		Description: b.Description,
		Date:        b.Date,
		Email:       owner,
	}
	if err := h.store.CreateListing(ctx, l); err != nil {
		return nil, huma.Error500InternalServerError("creating listing: " + err.Error())
	}
	return &ListingOutput{Body: *l}, nil
}

// UpdateListing applies a partial update to a listing the caller owns.
func (h *ListingsHandler) UpdateListing(
	ctx context.Context,
	input *UpdateListingInput,
) (*UpdateListingOutput, error) {
	if input.Body.Empty() {
		return nil, huma.Error400BadRequest("update carries no fields")
	}
	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if err := h.authorizeOwner(ctx, input.Authorization, input.ID); err != nil {
		return nil, err
	}

	err := h.store.UpdateListing(ctx, input.ID, &input.Body)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("updating listing: " + err.Error())
	}

	resp := &UpdateListingOutput{}
	resp.Body.Success = true
	return resp, nil
}

// DeleteListing removes a listing the caller owns. Deleting an unknown ID
// reports a deletedCount of 0.
func (h *ListingsHandler) DeleteListing(
	ctx context.Context,
	input *DeleteListingInput,
) (*DeleteListingOutput, error) {
	err := h.authorizeOwner(ctx, input.Authorization, input.ID)
	var se huma.StatusError
	if errors.As(err, &se) && se.GetStatus() == http.StatusNotFound {
		return &DeleteListingOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	n, err := h.store.DeleteListing(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("deleting listing: " + err.Error())
	}

	resp := &DeleteListingOutput{}
	resp.Body.DeletedCount = n
	return resp, nil
}

// Categories returns the distinct listing categories in first-seen order.
func (h *ListingsHandler) Categories(ctx context.Context, _ *struct{}) (*CategoriesOutput, error) {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing categories: " + err.Error())
	}
	return &CategoriesOutput{Body: nonNil(categories)}, nil
}

// authorizeOwner checks that the caller owns listing id.
func (h *ListingsHandler) authorizeOwner(ctx context.Context, header, id string) error {
	who, err := caller(h.verifier, header)
	if err != nil {
		return err
	}

	l, err := h.store.GetListing(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return huma.Error500InternalServerError("getting listing: " + err.Error())
	}
	if !strings.EqualFold(l.Email, who) {
		return huma.Error403Forbidden("listing belongs to another user")
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/listings",
		Summary:     "List listings",
		Description: "Returns listings in insertion order, optionally filtered by category. A limit returns the newest listings.",
		Tags:        []string{"listings"},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/listings/{id}",
		Summary:     "Get a listing by ID",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/listings",
		Summary:       "Create a listing",
		Description:   "Stores a listing owned by the signed-in user and returns the full record.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnauthorized, http.StatusForbidden},
	}, h.CreateListing)

	huma.Register(api, huma.Operation{
		OperationID: "update-listing",
		Method:      http.MethodPut,
		Path:        "/listings/{id}",
		Summary:     "Update a listing",
		Description: "Applies the fields present in the body to a listing the signed-in user owns.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
	}, h.UpdateListing)

	huma.Register(api, huma.Operation{
		OperationID: "delete-listing",
		Method:      http.MethodDelete,
		Path:        "/listings/{id}",
		Summary:     "Delete a listing",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusUnauthorized, http.StatusForbidden},
	}, h.DeleteListing)

	huma.Register(api, huma.Operation{
		OperationID: "my-listings",
		Method:      http.MethodGet,
		Path:        "/my-listings",
		Summary:     "List one owner's listings",
		Tags:        []string{"listings"},
	}, h.MyListings)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns the distinct listing categories in first-seen order.",
		Tags:        []string{"listings"},
	}, h.Categories)
}
