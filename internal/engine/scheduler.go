package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs feed refreshes periodically.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
	ctx    context.Context
}

// NewScheduler creates a Scheduler that refreshes eng every interval.
func NewScheduler(eng *Engine, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive (got %s)", interval)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
		ctx:    context.Background(),
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runRefresh); err != nil {
		return nil, fmt.Errorf("adding refresh schedule: %w", err)
	}

	return s, nil
}

// Start begins running scheduled refreshes. Jobs run with ctx, so
// cancelling it aborts an in-flight refresh.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	s.log.Info("scheduler started", "entries", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRefresh() {
	s.log.Debug("scheduled refresh starting")
	if _, err := s.engine.RunRefresh(s.ctx); err != nil {
		s.log.Error("scheduled refresh failed", "error", err)
	}
}
