// Package engine refreshes a listing feed on a schedule and announces the
// listings that appeared since the previous refresh.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pawmart/pawmart/internal/feed"
	"github.com/pawmart/pawmart/internal/notify"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// Engine watches one listing feed.
type Engine struct {
	fetch   feed.Fetcher
	loader  *feed.Loader
	alerter notify.ListingAlerter
	scope   string
	onFresh func([]domain.Listing)
	log     *slog.Logger

	// run serialises refreshes so an older load can never replace a newer
	// baseline.
	run sync.Mutex

	mu     sync.Mutex
	primed bool
	last   []domain.Listing
}

// NewEngine creates an Engine that loads fetch through loader.
func NewEngine(fetch feed.Fetcher, loader *feed.Loader, opts ...EngineOption) *Engine {
	eng := &Engine{
		fetch:  fetch,
		loader: loader,
		scope:  "all listings",
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithAlerter sends new listings to an external channel.
func WithAlerter(a notify.ListingAlerter) EngineOption {
	return func(e *Engine) {
		e.alerter = a
	}
}

// WithScope names the watched feed in alerts and logs, e.g. "Pets".
func WithScope(scope string) EngineOption {
	return func(e *Engine) {
		if scope != "" {
			e.scope = scope
		}
	}
}

// WithFreshHandler registers fn to receive every non-empty batch of new
// listings, before any alert is sent.
func WithFreshHandler(fn func([]domain.Listing)) EngineOption {
	return func(e *Engine) {
		e.onFresh = fn
	}
}

// RunRefresh loads the feed once and returns the listings not present in
// the previous successful load. The first successful load only sets the
// baseline. Failed and superseded loads leave the baseline untouched.
func (e *Engine) RunRefresh(ctx context.Context) ([]domain.Listing, error) {
	e.run.Lock()
	defer e.run.Unlock()

	var fetchErr error
	listings, err := e.loader.Load(ctx, func(ctx context.Context) ([]domain.Listing, error) {
		ls, err := e.fetch(ctx)
		fetchErr = err
		return ls, err
	})
	if errors.Is(err, feed.ErrSuperseded) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("refreshing %s: %w", e.scope, err)
	}
	if fetchErr != nil {
		// The loader has already told the user; keep comparing against the
		// last good snapshot.
		return nil, nil
	}

	e.mu.Lock()
	prev, primed := e.last, e.primed
	e.last, e.primed = listings, true
	e.mu.Unlock()

	if !primed {
		e.log.Info("watch baseline recorded", "scope", e.scope, "listings", len(listings))
		return nil, nil
	}

	fresh := feed.NewListings(prev, listings)
	if len(fresh) == 0 {
		e.log.Debug("no new listings", "scope", e.scope)
		return nil, nil
	}

	e.log.Info("new listings found", "scope", e.scope, "count", len(fresh))
	if e.onFresh != nil {
		e.onFresh(fresh)
	}

	if e.alerter != nil {
		if err := ProcessAlerts(ctx, e.alerter, e.scope, fresh); err != nil {
			return fresh, err
		}
	}
	return fresh, nil
}
