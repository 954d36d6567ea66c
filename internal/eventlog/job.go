package eventlog

import (
	"context"
	"time"

	"github.com/osse101/itemforge/internal/logger"
)

// CleanupJob is a worker job that prunes old item history
type CleanupJob struct {
	service   Service
	retention time.Duration
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retention time.Duration) *CleanupJob {
	return &CleanupJob{
		service:   service,
		retention: retention,
	}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupJobStarting, "retention", j.retention)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retention)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", duration)
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, "deleted_count", count, "duration", duration)
	return nil
}
