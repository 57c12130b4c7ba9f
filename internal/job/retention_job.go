package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/smotired/bulletinator/internal/config"
	"github.com/smotired/bulletinator/internal/repository"
)

// RetentionJob purges resolved reports older than the configured retention
// window
type RetentionJob struct {
	reportRepo repository.ReportRepository
	cfg        config.ReportsConfig
	logger     *zap.Logger
}

// NewRetentionJob creates a new RetentionJob
func NewRetentionJob(
	reportRepo repository.ReportRepository,
	cfg config.ReportsConfig,
	logger *zap.Logger,
) *RetentionJob {
	return &RetentionJob{
		reportRepo: reportRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run executes one retention sweep
func (j *RetentionJob) Run() {
	if j.cfg.RetentionDays <= 0 {
		return
	}
	ctx := context.Background()
	cutoff := time.Now().UTC().AddDate(0, 0, -j.cfg.RetentionDays)

	j.logger.Info("Starting report retention sweep",
		zap.Time("cutoff", cutoff),
		zap.Int("retention_days", j.cfg.RetentionDays),
	)

	deleted, err := j.reportRepo.DeleteResolvedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Report retention sweep failed", zap.Error(err))
		return
	}

	j.logger.Info("Report retention sweep completed",
		zap.Int64("deleted", deleted),
	)
}

// Schedule registers the job on a cron runner using the configured schedule
// and returns the started runner
func (j *RetentionJob) Schedule() (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddJob(j.cfg.CleanupSchedule, j); err != nil {
		return nil, err
	}
	c.Start()
	j.logger.Info("Report retention job scheduled",
		zap.String("schedule", j.cfg.CleanupSchedule),
	)
	return c, nil
}
