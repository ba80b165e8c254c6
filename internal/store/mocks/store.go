// Package mocks provides testify mocks of the store interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pawmart/pawmart/internal/store"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// MockStore is a testify mock of store.Store.
type MockStore struct {
	mock.Mock
}

var _ store.Store = (*MockStore)(nil)

// NewMockStore creates a MockStore whose expectations are asserted when
// the test ends.
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	m := &MockStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockStore_Expecter builds typed expectations.
type MockStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation builder.
func (m *MockStore) EXPECT() *MockStore_Expecter {
	return &MockStore_Expecter{mock: &m.Mock}
}

// ListListings implements store.Store.
func (m *MockStore) ListListings(ctx context.Context, q *store.ListingQuery) ([]domain.Listing, error) {
	ret := m.Called(ctx, q)
	var r0 []domain.Listing
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Listing)
	}
	return r0, ret.Error(1)
}

// MockStore_ListListings_Call wraps mock.Call for ListListings.
type MockStore_ListListings_Call struct {
	*mock.Call
}

// ListListings expects a call to ListListings.
func (e *MockStore_Expecter) ListListings(ctx any, q any) *MockStore_ListListings_Call {
	return &MockStore_ListListings_Call{Call: e.mock.On("ListListings", ctx, q)}
}

// Return sets the values returned by ListListings.
func (c *MockStore_ListListings_Call) Return(r0 []domain.Listing, r1 error) *MockStore_ListListings_Call {
	c.Call.Return(r0, r1)
	return c
}

// Run calls fn with the arguments of ListListings.
func (c *MockStore_ListListings_Call) Run(fn func(ctx context.Context, q *store.ListingQuery)) *MockStore_ListListings_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(*store.ListingQuery))
	})
	return c
}

// ListListingsByOwner implements store.Store.
func (m *MockStore) ListListingsByOwner(ctx context.Context, email string) ([]domain.Listing, error) {
	ret := m.Called(ctx, email)
	var r0 []domain.Listing
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Listing)
	}
	return r0, ret.Error(1)
}

// MockStore_ListListingsByOwner_Call wraps mock.Call for ListListingsByOwner.
type MockStore_ListListingsByOwner_Call struct {
	*mock.Call
}

// ListListingsByOwner expects a call to ListListingsByOwner.
func (e *MockStore_Expecter) ListListingsByOwner(ctx any, email any) *MockStore_ListListingsByOwner_Call {
	return &MockStore_ListListingsByOwner_Call{Call: e.mock.On("ListListingsByOwner", ctx, email)}
}

// Return sets the values returned by ListListingsByOwner.
func (c *MockStore_ListListingsByOwner_Call) Return(r0 []domain.Listing, r1 error) *MockStore_ListListingsByOwner_Call {
	c.Call.Return(r0, r1)
	return c
}

// Run calls fn with the arguments of ListListingsByOwner.
func (c *MockStore_ListListingsByOwner_Call) Run(fn func(ctx context.Context, email string)) *MockStore_ListListingsByOwner_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(string))
	})
	return c
}

// ListCategories implements store.Store.
func (m *MockStore) ListCategories(ctx context.Context) ([]string, error) {
	ret := m.Called(ctx)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

// MockStore_ListCategories_Call wraps mock.Call for ListCategories.
type MockStore_ListCategories_Call struct {
	*mock.Call
}

// ListCategories expects a call to ListCategories.
func (e *MockStore_Expecter) ListCategories(ctx any) *MockStore_ListCategories_Call {
	return &MockStore_ListCategories_Call{Call: e.mock.On("ListCategories", ctx)}
}

// Return sets the values returned by ListCategories.
func (c *MockStore_ListCategories_Call) Return(r0 []string, r1 error) *MockStore_ListCategories_Call {
	c.Call.Return(r0, r1)
	return c
}

// Run calls fn with the arguments of ListCategories.
func (c *MockStore_ListCategories_Call) Run(fn func(ctx context.Context)) *MockStore_ListCategories_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context))
	})
	return c
}

// GetListing implements store.Store.
func (m *MockStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Listing
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Listing)
	}
	return r0, ret.Error(1)
}

// MockStore_GetListing_Call wraps mock.Call for GetListing.
type MockStore_GetListing_Call struct {
	*mock.Call
}

// GetListing expects a call to GetListing.
func (e *MockStore_Expecter) GetListing(ctx any, id any) *MockStore_GetListing_Call {
	return &MockStore_GetListing_Call{Call: e.mock.On("GetListing", ctx, id)}
}

// Return sets the values returned by GetListing.
func (c *MockStore_GetListing_Call) Return(r0 *domain.Listing, r1 error) *MockStore_GetListing_Call {
	c.Call.Return(r0, r1)
	return c
}

// Run calls fn with the arguments of GetListing.
func (c *MockStore_GetListing_Call) Run(fn func(ctx context.Context, id string)) *MockStore_GetListing_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(string))
	})
	return c
}

// CreateListing implements store.Store.
func (m *MockStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	ret := m.Called(ctx, l)
	return ret.Error(0)
}

// MockStore_CreateListing_Call wraps mock.Call for CreateListing.
type MockStore_CreateListing_Call struct {
	*mock.Call
}

// CreateListing expects a call to CreateListing.
func (e *MockStore_Expecter) CreateListing(ctx any, l any) *MockStore_CreateListing_Call {
	return &MockStore_CreateListing_Call{Call: e.mock.On("CreateListing", ctx, l)}
}

// Return sets the values returned by CreateListing.
func (c *MockStore_CreateListing_Call) Return(r0 error) *MockStore_CreateListing_Call {
	c.Call.Return(r0)
	return c
}

// Run calls fn with the arguments of CreateListing.
func (c *MockStore_CreateListing_Call) Run(fn func(ctx context.Context, l *domain.Listing)) *MockStore_CreateListing_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(*domain.Listing))
	})
	return c
}

// UpdateListing implements store.Store.
func (m *MockStore) UpdateListing(ctx context.Context, id string, u *domain.ListingUpdate) error {
	ret := m.Called(ctx, id, u)
	return ret.Error(0)
}

// MockStore_UpdateListing_Call wraps mock.Call for UpdateListing.
type MockStore_UpdateListing_Call struct {
	*mock.Call
}

// UpdateListing expects a call to UpdateListing.
func (e *MockStore_Expecter) UpdateListing(ctx any, id any, u any) *MockStore_UpdateListing_Call {
	return &MockStore_UpdateListing_Call{Call: e.mock.On("UpdateListing", ctx, id, u)}
}

// Return sets the values returned by UpdateListing.
func (c *MockStore_UpdateListing_Call) Return(r0 error) *MockStore_UpdateListing_Call {
	c.Call.Return(r0)
	return c
}

// Run calls fn with the arguments of UpdateListing.
func (c *MockStore_UpdateListing_Call) Run(fn func(ctx context.Context, id string, u *domain.ListingUpdate)) *MockStore_UpdateListing_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(string), args[2].(*domain.ListingUpdate))
	})
	return c
}

// DeleteListing implements store.Store.
func (m *MockStore) DeleteListing(ctx context.Context, id string) (int, error) {
	ret := m.Called(ctx, id)
	r0 := ret.Int(0)
	return r0, ret.Error(1)
}

// MockStore_DeleteListing_Call wraps mock.Call for DeleteListing.
type MockStore_DeleteListing_Call struct {
	*mock.Call
}

// DeleteListing expects a call to DeleteListing.
func (e *MockStore_Expecter) DeleteListing(ctx any, id any) *MockStore_DeleteListing_Call {
	return &MockStore_DeleteListing_Call{Call: e.mock.On("DeleteListing", ctx, id)}
}

// Return sets the values returned by DeleteListing.
func (c *MockStore_DeleteListing_Call) Return(r0 int, r1 error) *MockStore_DeleteListing_Call {
	c.Call.Return(r0, r1)
	return c
}

// Run calls fn with the arguments of DeleteListing.
func (c *MockStore_DeleteListing_Call) Run(fn func(ctx context.Context, id string)) *MockStore_DeleteListing_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(string))
	})
	return c
}

// ListOrders implements store.Store.
func (m *MockStore) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	ret := m.Called(ctx, email)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

// MockStore_ListOrders_Call wraps mock.Call for ListOrders.
type MockStore_ListOrders_Call struct {
	*mock.Call
}

// ListOrders expects a call to ListOrders.
func (e *MockStore_Expecter) ListOrders(ctx any, email any) *MockStore_ListOrders_Call {
	return &MockStore_ListOrders_Call{Call: e.mock.On("ListOrders", ctx, email)}
}

// Return sets the values returned by ListOrders.
func (c *MockStore_ListOrders_Call) Return(r0 []domain.Order, r1 error) *MockStore_ListOrders_Call {
	c.Call.Return(r0, r1)
	return c
}

// Run calls fn with the arguments of ListOrders.
func (c *MockStore_ListOrders_Call) Run(fn func(ctx context.Context, email string)) *MockStore_ListOrders_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(string))
	})
	return c
}

// CreateOrder implements store.Store.
func (m *MockStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	ret := m.Called(ctx, o)
	return ret.Error(0)
}

// MockStore_CreateOrder_Call wraps mock.Call for CreateOrder.
type MockStore_CreateOrder_Call struct {
	*mock.Call
}

// CreateOrder expects a call to CreateOrder.
func (e *MockStore_Expecter) CreateOrder(ctx any, o any) *MockStore_CreateOrder_Call {
	return &MockStore_CreateOrder_Call{Call: e.mock.On("CreateOrder", ctx, o)}
}

// Return sets the values returned by CreateOrder.
func (c *MockStore_CreateOrder_Call) Return(r0 error) *MockStore_CreateOrder_Call {
	c.Call.Return(r0)
	return c
}

// Run calls fn with the arguments of CreateOrder.
func (c *MockStore_CreateOrder_Call) Run(fn func(ctx context.Context, o *domain.Order)) *MockStore_CreateOrder_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(*domain.Order))
	})
	return c
}

// Ping implements store.Store.
func (m *MockStore) Ping(ctx context.Context) error {
	ret := m.Called(ctx)
	return ret.Error(0)
}

// MockStore_Ping_Call wraps mock.Call for Ping.
type MockStore_Ping_Call struct {
	*mock.Call
}

// Ping expects a call to Ping.
func (e *MockStore_Expecter) Ping(ctx any) *MockStore_Ping_Call {
	return &MockStore_Ping_Call{Call: e.mock.On("Ping", ctx)}
}

// Return sets the values returned by Ping.
func (c *MockStore_Ping_Call) Return(r0 error) *MockStore_Ping_Call {
	c.Call.Return(r0)
	return c
}

// Run calls fn with the arguments of Ping.
func (c *MockStore_Ping_Call) Run(fn func(ctx context.Context)) *MockStore_Ping_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context))
	})
	return c
}
