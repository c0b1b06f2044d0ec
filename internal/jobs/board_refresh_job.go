package jobs

import (
	"context"
	"sync"
	"time"

	"mota/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultBoardRefreshSchedule runs the refresh every 30 seconds.
const DefaultBoardRefreshSchedule = "*/30 * * * * *"

// BoardRefresher is satisfied by commands.RefreshBoardCommandHandler.
type BoardRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshBoardCommand) error
}

// BoardRefreshJob keeps the pipeline board snapshot fresh.
type BoardRefreshJob struct {
	handler  BoardRefresher
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger

	initial sync.WaitGroup
}

// NewBoardRefreshJob creates the job. An empty schedule uses
// DefaultBoardRefreshSchedule.
func NewBoardRefreshJob(handler BoardRefresher, schedule string, logger *zap.Logger) *BoardRefreshJob {
	if schedule == "" {
		schedule = DefaultBoardRefreshSchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "board_refresh_job"))

	return &BoardRefreshJob{
		handler:  handler,
		schedule: schedule,
		timeout:  20 * time.Second,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start registers the schedule, starts the scheduler and triggers a first
// refresh in the background. It does not wait for the backend and fails
// only on an invalid cron expression.
func (j *BoardRefreshJob) Start() error {
	id, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()

	// The wrapped job shares the SkipIfStillRunning lock with the schedule.
	first := j.cron.Entry(id).WrappedJob
	j.initial.Add(1)
	go func() {
		defer j.initial.Done()
		first.Run()
	}()

	j.logger.Info("board refresh job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *BoardRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.initial.Wait()
	j.logger.Info("board refresh job stopped")
}

func (j *BoardRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	started := time.Now()
	if err := j.handler.Handle(ctx, commands.NewRefreshBoardCommand()); err != nil {
		j.logger.Error("board refresh failed", zap.Error(err))
		return
	}
	j.logger.Debug("board refreshed", zap.Duration("elapsed", time.Since(started)))
}
