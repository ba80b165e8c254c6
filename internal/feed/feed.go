// Package feed loads listing collections with last-request-wins semantics.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/pawmart/pawmart/internal/metrics"
	"github.com/pawmart/pawmart/internal/notify"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// ErrSuperseded is returned by Load when a newer Load started before this
// one finished. Its result has been discarded.
var ErrSuperseded = errors.New("feed request superseded by a newer one")

// Fetcher retrieves a listing collection.
type Fetcher func(ctx context.Context) ([]domain.Listing, error)

// Loader serialises listing fetches so that only the most recently started
// request may publish its result. Starting a request cancels the previous
// one. Safe for concurrent use.
type Loader struct {
	name     string
	notifier notify.Notifier
	log      *slog.Logger

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current []domain.Listing
}

// NewLoader creates a loader. name appears in user-facing failure messages,
// e.g. "listings".
func NewLoader(name string, n notify.Notifier, log *slog.Logger) *Loader {
	return &Loader{name: name, notifier: n, log: log}
}

// Load runs fetch and returns its listings if no newer Load has started in
// the meantime, otherwise ErrSuperseded. A failed fetch is reported through
// the notifier and yields an empty collection with a nil error. Only
// cancellation of ctx itself is returned as an error.
func (l *Loader) Load(ctx context.Context, fetch Fetcher) ([]domain.Listing, error) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	mine := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	listings, err := fetch(reqCtx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if mine != l.seq {
		metrics.FeedLoadsTotal.WithLabelValues("superseded").Inc()
		l.log.Debug("discarding superseded feed result", "feed", l.name, "seq", mine, "latest", l.seq)
		return nil, ErrSuperseded
	}
	l.cancel = nil

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		metrics.FeedLoadsTotal.WithLabelValues("failed").Inc()
		l.log.Warn("feed load failed", "feed", l.name, "error", err)
		l.notifier.Error(fmt.Sprintf("Failed to load %s: %v", l.name, err))
		l.current = []domain.Listing{}
		metrics.FeedListings.Set(0)
		return []domain.Listing{}, nil
	}

	if listings == nil {
		listings = []domain.Listing{}
	}
	l.current = listings
	metrics.FeedLoadsTotal.WithLabelValues("ok").Inc()
	metrics.FeedListings.Set(float64(len(listings)))
	return slices.Clone(listings), nil
}

// Latest returns the most recently published collection, or nil before the
// first successful Load.
func (l *Loader) Latest() []domain.Listing {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.current)
}

// NewListings returns the listings of next whose IDs are absent from prev,
// in next's order. Listings without an ID are never reported.
func NewListings(prev, next []domain.Listing) []domain.Listing {
	seen := make(map[string]struct{}, len(prev))
	for i := range prev {
		seen[prev[i].ID] = struct{}{}
	}

	var fresh []domain.Listing
	for i := range next {
		if next[i].ID == "" {
			continue
		}
		if _, ok := seen[next[i].ID]; !ok {
			fresh = append(fresh, next[i])
		}
	}
	return fresh
}
