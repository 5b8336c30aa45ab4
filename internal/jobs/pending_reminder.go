// File: internal/jobs/pending_reminder.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"farway_backend/internal/config"
	"farway_backend/internal/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PendingReminderJob periodically nudges receivers about connection requests
// that have been sitting in pending for too long.
type PendingReminderJob struct {
	connectionService connection.Service
	logger            *zap.Logger
	cfg               *config.Config
	cronScheduler     *cron.Cron
}

// NewPendingReminderJob creates a new PendingReminderJob.
func NewPendingReminderJob(
	connectionService connection.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *PendingReminderJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &PendingReminderJob{
		connectionService: connectionService,
		logger:            logger.Named("PendingReminderJob"),
		cfg:               cfg,
		cronScheduler:     scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *PendingReminderJob) SetupAndStart() error {
	jobSpec := j.cfg.ConnectionReminderJobSchedule // e.g., "@daily", "0 9 * * *"
	if jobSpec == "" {
		j.logger.Warn("Pending reminder job schedule not defined (CONNECTION_REMINDER_JOB_SCHEDULE). Job will not run.")
		return nil // Not a fatal error, just won't run
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule pending reminder job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Pending reminder job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// runJob is the actual work performed by the cron job.
func (j *PendingReminderJob) runJob() {
	j.logger.Info("Starting pending reminder job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	remindedCount, err := j.connectionService.RemindStalePending(ctx, j.cfg.ConnectionReminderAfter)
	if err != nil {
		j.logger.Error("Pending reminder job run failed", zap.Error(err))
	} else {
		j.logger.Info("Pending reminder job run completed", zap.Int("reminders_sent", remindedCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *PendingReminderJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping pending reminder job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Pending reminder job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Pending reminder job scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	cl.zl.Info(msg, fields...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
