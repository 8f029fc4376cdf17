package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"

	"github.com/robfig/cron/v3"
)

// PeriodResetJob rolls the fleet's period counters over at each period
// boundary. Daily counters reset at midnight, weekly counters on Monday
// midnight, monthly counters on the first of the month. Counters never
// roll over on their own; a missed run leaves the previous period's
// figures in place until the next boundary.
type PeriodResetJob struct {
	handler commands.ResetPeriodCountersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPeriodResetJob creates a job that issues period rollover commands.
// Uses ResetPeriodCountersCommandHandler to perform the bulk reset.
func NewPeriodResetJob(handler commands.ResetPeriodCountersCommandHandler, logger *slog.Logger) *PeriodResetJob {
	return &PeriodResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "period_reset_job"),
	}
}

// Start registers the three rollover schedules and starts the scheduler.
func (j *PeriodResetJob) Start() error {
	schedules := []struct {
		spec string
		kind driver.PeriodKind
	}{
		{"0 0 0 * * *", driver.PeriodDaily},
		{"0 0 0 * * 1", driver.PeriodWeekly},
		{"0 0 0 1 * *", driver.PeriodMonthly},
	}

	for _, schedule := range schedules {
		kind := schedule.kind
		_, err := j.cron.AddFunc(schedule.spec, func() {
			j.reset(kind)
		})
		if err != nil {
			return err
		}
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Period reset job started")
	return nil
}

// Stop stops the period reset job.
func (j *PeriodResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Period reset job stopped")
}

func (j *PeriodResetJob) reset(kind driver.PeriodKind) {
	ctx := context.Background()

	cmd, err := commands.NewResetPeriodCountersCommand(kind)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to create period reset command", "kind", kind.String(), "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Period reset job failed", "kind", kind.String(), "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Period counters reset", "kind", kind.String())
}
