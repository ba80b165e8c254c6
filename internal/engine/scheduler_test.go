package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/pawmart/pawmart/pkg/types"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(&scriptedFetcher{responses: []fetchResult{{}}})

	sched, err := NewScheduler(eng, 30*time.Second, quietLogger())
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)
}

func TestNewScheduler_InvalidInterval(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(&scriptedFetcher{responses: []fetchResult{{}}})

	_, err := NewScheduler(eng, 0, quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(&scriptedFetcher{responses: []fetchResult{{}}})

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start(context.Background())
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_RunRefreshUsesStartContext(t *testing.T) {
	t.Parallel()

	var got context.Context
	f := &scriptedFetcher{responses: []fetchResult{{listings: listings("a")}}}
	eng := newTestEngine(f)
	eng.fetch = func(ctx context.Context) ([]domain.Listing, error) {
		got = ctx
		return f.fetch(ctx)
	}

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "watch")
	sched.Start(ctx)
	defer func() { <-sched.Stop().Done() }()

	sched.runRefresh()
	require.NotNil(t, got)
	assert.Equal(t, "watch", got.Value(key{}))
	assert.Equal(t, 1, f.calls)
}
