// Package jobs provides scheduled background tasks for the MOTA gateway.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// drive command handlers, the same way HTTP handlers do.
//
// # Available Jobs
//
// BoardRefreshJob rebuilds the in-memory pipeline board from the backend on
// the BOARD_REFRESH_SCHEDULE cron expression (default every 30 seconds).
// Start triggers a first refresh in the background without waiting for the
// backend; until it completes the board reports that it is not ready.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshBoardHandler, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in place. Runs
// never overlap: a tick that fires while the previous run is still in
// progress is skipped.
package jobs
