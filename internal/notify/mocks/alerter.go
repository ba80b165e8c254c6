// Package mocks provides testify mocks of the notify interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pawmart/pawmart/internal/notify"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// MockListingAlerter is a testify mock of notify.ListingAlerter.
type MockListingAlerter struct {
	mock.Mock
}

var _ notify.ListingAlerter = (*MockListingAlerter)(nil)

// NewMockListingAlerter creates a MockListingAlerter whose expectations are
// asserted when the test ends.
func NewMockListingAlerter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListingAlerter {
	m := &MockListingAlerter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockListingAlerter_Expecter builds typed expectations.
type MockListingAlerter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation builder.
func (m *MockListingAlerter) EXPECT() *MockListingAlerter_Expecter {
	return &MockListingAlerter_Expecter{mock: &m.Mock}
}

// SendListing implements notify.ListingAlerter.
func (m *MockListingAlerter) SendListing(ctx context.Context, l *domain.Listing) error {
	return m.Called(ctx, l).Error(0)
}

// MockListingAlerter_SendListing_Call wraps mock.Call for SendListing.
type MockListingAlerter_SendListing_Call struct {
	*mock.Call
}

// SendListing expects a call to SendListing.
func (e *MockListingAlerter_Expecter) SendListing(ctx any, l any) *MockListingAlerter_SendListing_Call {
	return &MockListingAlerter_SendListing_Call{Call: e.mock.On("SendListing", ctx, l)}
}

// Return sets the value returned by SendListing.
func (c *MockListingAlerter_SendListing_Call) Return(r0 error) *MockListingAlerter_SendListing_Call {
	c.Call.Return(r0)
	return c
}

// Run calls fn with the arguments of SendListing.
func (c *MockListingAlerter_SendListing_Call) Run(
	fn func(ctx context.Context, l *domain.Listing),
) *MockListingAlerter_SendListing_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].(*domain.Listing))
	})
	return c
}

// SendBatch implements notify.ListingAlerter.
func (m *MockListingAlerter) SendBatch(ctx context.Context, listings []domain.Listing, scope string) error {
	return m.Called(ctx, listings, scope).Error(0)
}

// MockListingAlerter_SendBatch_Call wraps mock.Call for SendBatch.
type MockListingAlerter_SendBatch_Call struct {
	*mock.Call
}

// SendBatch expects a call to SendBatch.
func (e *MockListingAlerter_Expecter) SendBatch(ctx any, listings any, scope any) *MockListingAlerter_SendBatch_Call {
	return &MockListingAlerter_SendBatch_Call{Call: e.mock.On("SendBatch", ctx, listings, scope)}
}

// Return sets the value returned by SendBatch.
func (c *MockListingAlerter_SendBatch_Call) Return(r0 error) *MockListingAlerter_SendBatch_Call {
	c.Call.Return(r0)
	return c
}

// Run calls fn with the arguments of SendBatch.
func (c *MockListingAlerter_SendBatch_Call) Run(
	fn func(ctx context.Context, listings []domain.Listing, scope string),
) *MockListingAlerter_SendBatch_Call {
	c.Call.Run(func(args mock.Arguments) {
		fn(args[0].(context.Context), args[1].([]domain.Listing), args[2].(string))
	})
	return c
}
