package cron

import (
	"context"
	"time"

	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"go.uber.org/zap"
)

// StartCleanupTask drops audit rows older than retentionDays, once at startup
// and then daily, until ctx is done.
func StartCleanupTask(ctx context.Context, auditService *application.AuditService, retentionDays int) {
	go func() {
		log := logger.L().With(zap.String("task", "audit_cleanup"))
		log.Info("Starting background cleanup task", zap.Int("retention_days", retentionDays))

		run := func() {
			n, err := auditService.CleanupOldLogs(retentionDays)
			if err != nil {
				log.Error("Failed to cleanup old audit logs", zap.Error(err))
				return
			}
			log.Debug("Audit log cleanup completed", zap.Int64("deleted", n))
		}
		run()

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				run()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// StartReconcileTask rebuilds the payment clusters every interval so that
// ticket payment statuses never drift from the recorded transactions. A zero
// interval disables it.
func StartReconcileTask(ctx context.Context, clusters *application.ClusterService, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		log := logger.L().With(zap.String("task", "reconcile"))
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := clusters.RebuildClusters(nil)
				if err != nil {
					log.Error("Scheduled cluster rebuild failed", zap.Error(err))
					continue
				}
				log.Info("Scheduled cluster rebuild completed", zap.Int("clusters", n))
			case <-ctx.Done():
				return
			}
		}
	}()
}
