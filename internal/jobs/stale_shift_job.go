package jobs

import (
	"context"
	"log/slog"
	"time"

	"factoryops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleShiftJob closes shifts left open past the configured maximum duration.
// Runs every minute so a forgotten clock-out cannot block the employee's next
// shift indefinitely.
type StaleShiftJob struct {
	handler     commands.CloseStaleShiftsCommandHandler
	maxDuration time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewStaleShiftJob creates a new job for sweeping stale shifts.
// Uses CloseStaleShiftsCommandHandler to close overdue shifts every minute.
func NewStaleShiftJob(
	handler commands.CloseStaleShiftsCommandHandler,
	maxDuration time.Duration,
	logger *slog.Logger,
) *StaleShiftJob {
	return &StaleShiftJob{
		handler:     handler,
		maxDuration: maxDuration,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "stale_shift_job"),
	}
}

// Start begins the stale shift job to run every minute.
func (j *StaleShiftJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCloseStaleShiftsCommand(j.maxDuration)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale shift command construction failed", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale shift job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale shift job started (running every minute)",
		"max_duration", j.maxDuration)
	return nil
}

// Stop stops the stale shift job.
func (j *StaleShiftJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale shift job stopped")
}
