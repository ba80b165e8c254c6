package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pawmart/pawmart/internal/store"
	"github.com/pawmart/pawmart/pkg/orderform"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// OrdersHandler handles the order endpoints.
type OrdersHandler struct {
	store    store.Store
	verifier Verifier
	now      func() time.Time
}

// NewOrdersHandler creates a new OrdersHandler. A nil now uses time.Now.
func NewOrdersHandler(s store.Store, v Verifier, now func() time.Time) *OrdersHandler {
	if now == nil {
		now = time.Now
	}
	return &OrdersHandler{store: s, verifier: v, now: now}
}

// --- Input/Output types ---

// ListOrdersInput is the input for listing a buyer's orders.
type ListOrdersInput struct {
	Email string `query:"email" required:"true" doc:"Buyer email"`
}

// ListOrdersOutput is a bare JSON array of orders.
type ListOrdersOutput struct {
	Body []domain.Order
}

// OrderBody is the request body for placing an order. Derived fields sent by
// the client (price, total, status, category) are accepted but recomputed
// from the listing.
type OrderBody struct {
	_         struct{} `json:"-"                   additionalProperties:"true"`
	ProductID string   `json:"productId"           minLength:"1"               doc:"Listing ID"`
	BuyerName string   `json:"buyerName,omitempty"`
	Email     string   `json:"email,omitempty"                                 doc:"Buyer email; defaults to the caller"`
	Quantity  int      `json:"quantity,omitempty"                              doc:"Ignored for pets"`
	Address   string   `json:"address"`
	Date      string   `json:"date"                                            doc:"Pickup date"`
	Phone     string   `json:"phone"`
	Notes     string   `json:"notes,omitempty"`
}

// PlaceOrderInput is the input for placing an order.
type PlaceOrderInput struct {
	Authorization string `header:"Authorization" doc:"Bearer ID token"`
	Body          OrderBody
}

// PlaceOrderOutput carries the new order ID.
type PlaceOrderOutput struct {
	Body domain.OrderResult
}

// --- Handlers ---

// ListOrders returns the orders placed by an email.
func (h *OrdersHandler) ListOrders(
	ctx context.Context,
	input *ListOrdersInput,
) (*ListOrdersOutput, error) {
	orders, err := h.store.ListOrders(ctx, input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing orders: " + err.Error())
	}
	return &ListOrdersOutput{Body: nonNil(orders)}, nil
}

// PlaceOrder validates an order against its listing and stores it. Price,
// total, status and quantity for pets come from the listing, not the body.
func (h *OrdersHandler) PlaceOrder(
	ctx context.Context,
	input *PlaceOrderInput,
) (*PlaceOrderOutput, error) {
	who, err := caller(h.verifier, input.Authorization)
	if err != nil {
		return nil, err
	}
	buyer, err := ownerEmail(who, input.Body.Email)
	if err != nil {
		return nil, err
	}

	l, err := h.store.GetListing(ctx, input.Body.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error422UnprocessableEntity("unknown product " + input.Body.ProductID)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("getting listing: " + err.Error())
	}

	b := input.Body
	o, err := orderform.Build(l, &orderform.Input{
		BuyerName: b.BuyerName,
		Email:     buyer,
		Quantity:  b.Quantity,
		Address:   b.Address,
		Date:      b.Date,
		Phone:     b.Phone,
		Notes:     b.Notes,
	}, h.now())
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	if err := h.store.CreateOrder(ctx, o); err != nil {
		return nil, huma.Error500InternalServerError("creating order: " + err.Error())
	}

	resp := &PlaceOrderOutput{}
	resp.Body.InsertedID = o.ID
	return resp, nil
}

// RegisterOrderRoutes registers order endpoints with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/orders",
		Summary:     "List a buyer's orders",
		Tags:        []string{"orders"},
	}, h.ListOrders)

	huma.Register(api, huma.Operation{
		OperationID:   "place-order",
		Method:        http.MethodPost,
		Path:          "/orders",
		Summary:       "Place an order or adoption request",
		Description:   "Validates the order against its listing, recomputes price and total, and returns the new order ID.",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity},
	}, h.PlaceOrder)
}
