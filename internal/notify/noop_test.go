package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/pawmart/pawmart/pkg/types"
)

func TestNoOpNotifier_Messages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	n.Success("Order placed")
	n.Error("Failed to load listings")
	n.Info("Refreshing")

	out := buf.String()
	assert.Contains(t, out, `msg="Order placed" kind=success`)
	assert.Contains(t, out, `level=WARN msg="Failed to load listings"`)
	assert.Contains(t, out, `level=DEBUG msg=Refreshing`)
}

func TestNoOpNotifier_Alerts(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.DiscardHandler))
	l := domain.Listing{Name: "Bella", Category: domain.CategoryPets}

	require.NoError(t, n.SendListing(context.Background(), &l))
	require.NoError(t, n.SendBatch(context.Background(), []domain.Listing{l}, "Pets"))
	require.NoError(t, n.SendBatch(context.Background(), nil, "Pets"))
}

func TestTerminalNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf, domain.ThemeDark)

	n.Success("Listing added")
	n.Error("Invalid email or password.")
	n.Info("3 new listings")

	out := buf.String()
	assert.Contains(t, out, "✓ Listing added")
	assert.Contains(t, out, "✗ Invalid email or password.")
	assert.Contains(t, out, "• 3 new listings")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}

// compile-time interface checks.
var (
	_ Notifier       = (*NoOpNotifier)(nil)
	_ Notifier       = (*TerminalNotifier)(nil)
	_ ListingAlerter = (*NoOpNotifier)(nil)
	_ ListingAlerter = (*DiscordNotifier)(nil)
)
