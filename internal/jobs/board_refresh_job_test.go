package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"mota/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Handle(_ context.Context, cmd commands.RefreshBoardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	r.calls.Add(1)
	return r.err
}

// blockingRefresher holds every refresh until release is closed.
type blockingRefresher struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (r *blockingRefresher) Handle(ctx context.Context, _ commands.RefreshBoardCommand) error {
	r.calls.Add(1)
	select {
	case r.started <- struct{}{}:
	default:
	}
	select {
	case <-r.release:
	case <-ctx.Done():
	}
	return nil
}

func TestBoardRefreshJob_Start(t *testing.T) {
	t.Run("should refresh immediately and on schedule", func(t *testing.T) {
		refresher := &countingRefresher{}
		job := NewBoardRefreshJob(refresher, "* * * * * *", zap.NewNop())

		require.NoError(t, job.Start())
		defer job.Stop()

		assert.Eventually(t, func() bool {
			return refresher.calls.Load() >= 1
		}, time.Second, 10*time.Millisecond)
		assert.Eventually(t, func() bool {
			return refresher.calls.Load() >= 2
		}, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("should not wait for a slow first refresh", func(t *testing.T) {
		refresher := &blockingRefresher{started: make(chan struct{}, 1), release: make(chan struct{})}
		job := NewBoardRefreshJob(refresher, "@every 1h", zap.NewNop())

		returned := make(chan error, 1)
		go func() { returned <- job.Start() }()

		select {
		case err := <-returned:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Start blocked on the first refresh")
		}

		select {
		case <-refresher.started:
		case <-time.After(time.Second):
			t.Fatal("first refresh did not run")
		}

		close(refresher.release)
		job.Stop()
		assert.Equal(t, int32(1), refresher.calls.Load())
	})

	t.Run("should keep running after a failed refresh", func(t *testing.T) {
		refresher := &countingRefresher{err: errors.New("backend down")}
		job := NewBoardRefreshJob(refresher, "* * * * * *", nil)

		require.NoError(t, job.Start())
		defer job.Stop()

		assert.Eventually(t, func() bool {
			return refresher.calls.Load() >= 2
		}, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		refresher := &countingRefresher{}
		job := NewBoardRefreshJob(refresher, "every minute", zap.NewNop())

		require.Error(t, job.Start())
		assert.Zero(t, refresher.calls.Load())
	})

	t.Run("should default the schedule", func(t *testing.T) {
		job := NewBoardRefreshJob(&countingRefresher{}, "", nil)
		assert.Equal(t, DefaultBoardRefreshSchedule, job.schedule)
	})
}

func TestJobManager_StartAll(t *testing.T) {
	refresher := &countingRefresher{}
	manager := NewJobManager(refresher, "", zap.NewNop())

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.GreaterOrEqual(t, refresher.calls.Load(), int32(1))
}

func TestJobManager_StartAll_InvalidSchedule(t *testing.T) {
	manager := NewJobManager(&countingRefresher{}, "not a cron", zap.NewNop())

	err := manager.StartAll()

	require.ErrorContains(t, err, "board refresh job")
}
