package notify

import (
	"context"
	"log/slog"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// NoOpNotifier implements Notifier and ListingAlerter by logging. It is used
// for non-interactive output and when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that only logs.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Success logs msg at info level.
func (n *NoOpNotifier) Success(msg string) { n.log.Info(msg, "kind", "success") }

// Error logs msg at warn level.
func (n *NoOpNotifier) Error(msg string) { n.log.Warn(msg, "kind", "error") }

// Info logs msg at debug level.
func (n *NoOpNotifier) Info(msg string) { n.log.Debug(msg, "kind", "info") }

// SendListing logs and discards a single alert.
func (n *NoOpNotifier) SendListing(_ context.Context, l *domain.Listing) error {
	n.log.Debug("listing alert discarded (no webhook configured)",
		"listing", l.Name,
		"category", l.Category,
	)
	return nil
}

// SendBatch logs and discards a batch of alerts.
func (n *NoOpNotifier) SendBatch(_ context.Context, listings []domain.Listing, scope string) error {
	n.log.Debug("listing batch discarded (no webhook configured)",
		"scope", scope,
		"count", len(listings),
	)
	return nil
}
