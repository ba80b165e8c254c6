// Package notify delivers short user-facing messages and new-listing
// alerts.
package notify

import (
	"context"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// Notifier shows non-blocking status messages to the user. Implementations
// must not fail the operation that triggered them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// ListingAlerter announces newly published listings to an external channel.
type ListingAlerter interface {
	SendListing(ctx context.Context, l *domain.Listing) error
	SendBatch(ctx context.Context, listings []domain.Listing, scope string) error
}
