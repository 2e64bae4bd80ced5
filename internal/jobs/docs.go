// Package jobs provides the scheduled background tasks of the pipeline.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// ReplantJob drains the replant queue: every run claims up to a batch of
// Pending replant tasks, oldest first, and asks the plant supplier to
// replant each of them. The default schedule is "*/5 * * * * *" with a
// batch of 10; both come from configuration (REPLANT_SCHEDULE).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewReplantJob(drainHandler, metrics, schedule, 10, logger))
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll(ctx)
//
// # Error Handling
//
// A failed replant is recorded on its task and retried by a later run, so a
// run only logs infrastructure failures. Runs never overlap: a run still in
// progress when the next one is due causes that one to be skipped.
package jobs
