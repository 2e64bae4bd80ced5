package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	replantJob *ReplantJob
}

func NewJobManager(replantJob *ReplantJob) *JobManager {
	return &JobManager{replantJob: replantJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.replantJob.Start(); err != nil {
		return fmt.Errorf("failed to start replant job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones until ctx is done.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.replantJob.Stop(ctx)
}
