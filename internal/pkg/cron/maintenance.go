package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
)

type MaintenanceJobs struct {
	logRepo       admin.LogRepository
	retentionDays int
}

func NewMaintenanceJobs(logRepo admin.LogRepository, retentionDays int) *MaintenanceJobs {
	return &MaintenanceJobs{
		logRepo:       logRepo,
		retentionDays: retentionDays,
	}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_action_log", 24*time.Hour, j.PruneActionLog)
}

// PruneActionLog removes admin action log rows older than the retention window.
func (j *MaintenanceJobs) PruneActionLog(ctx context.Context) error {
	if j.retentionDays <= 0 {
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)

	deleted, err := j.logRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune action log: %w", err)
	}

	if deleted > 0 {
		slog.Info("Cron: Pruned action log", "deleted", deleted, "cutoff", cutoff)
	}

	return nil
}
