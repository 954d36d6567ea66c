package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/itemforge/internal/eventlog"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/scheduler"
	"github.com/osse101/itemforge/internal/worker"
)

// ContentSyncJob re-syncs the item templates file. Unchanged files are skipped
// by hash, so frequent runs are cheap.
func (a *App) ContentSyncJob() worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		result, err := a.SyncContent(ctx)
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Info(LogMsgContentSynced,
			"inserted", result.TemplatesInserted,
			"updated", result.TemplatesUpdated,
			"skipped", result.TemplatesSkipped)
		return nil
	})
}

// HistoryCleanupJob prunes item history older than the configured retention
func (a *App) HistoryCleanupJob() worker.Job {
	return eventlog.NewCleanupJob(a.History, a.Config.HistoryRetention)
}

// RunMaintenance runs content sync and history pruning on their configured
// intervals until ctx is cancelled. Both jobs also run once at start.
func (a *App) RunMaintenance(ctx context.Context) {
	pool := worker.NewPool(a.Config.WorkerCount, MaintenanceQueueSize)
	pool.Start(ctx)

	sched := scheduler.New(pool)
	sched.Schedule(ctx, a.Config.ContentSyncInterval, a.ContentSyncJob(), true)
	sched.Schedule(ctx, a.Config.HistoryPruneInterval, a.HistoryCleanupJob(), true)
	slog.Info(LogMsgMaintenanceStarted,
		"workers", a.Config.WorkerCount,
		"content_sync_interval", a.Config.ContentSyncInterval,
		"history_prune_interval", a.Config.HistoryPruneInterval)

	<-ctx.Done()
	sched.Stop()
	pool.Stop()
	slog.Info(LogMsgMaintenanceStopped)
}
