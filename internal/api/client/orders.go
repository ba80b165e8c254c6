package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// ListOrders returns the orders placed by email.
func (c *Client) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	var orders domain.Orders
	if err := c.get(ctx, "/orders?"+url.Values{"email": {email}}.Encode(), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PlaceOrder submits an order or adoption request and returns the ID the
// server assigned. A response without an insertedId is treated as failure.
func (c *Client) PlaceOrder(ctx context.Context, o *domain.Order) (string, error) {
	var res domain.OrderResult
	if err := c.post(ctx, "/orders", o, &res); err != nil {
		return "", err
	}
	if res.InsertedID == "" {
		return "", fmt.Errorf("order was not accepted by the server")
	}
	return res.InsertedID, nil
}
