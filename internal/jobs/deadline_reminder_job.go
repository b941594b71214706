package jobs

import (
	"context"
	"fmt"
	"time"

	"tailor/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DueOrdersFinder returns the unfinished orders due within a number of days.
type DueOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetDueOrdersQuery) ([]queries.OrderItem, error)
}

// DeadlineReminderJob periodically logs orders that are close to or past
// their deadline.
type DeadlineReminderJob struct {
	finder DueOrdersFinder
	days   int
	spec   string
	cron   *cron.Cron
	logger *zap.Logger
	now    func() time.Time
}

// NewDeadlineReminderJob validates spec (six fields, seconds first) and days.
// now must be the clock the finder uses so overdue and due agree; nil means
// time.Now.
func NewDeadlineReminderJob(
	finder DueOrdersFinder,
	spec string,
	days int,
	now func() time.Time,
	logger *zap.Logger,
) (*DeadlineReminderJob, error) {
	if _, err := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(spec); err != nil {
		return nil, fmt.Errorf("parse deadline reminder schedule %q: %w", spec, err)
	}
	if _, err := queries.NewGetDueOrdersQuery(days); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	return &DeadlineReminderJob{
		finder: finder,
		days:   days,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.Named("deadline_reminder_job"),
		now:    now,
	}, nil
}

// Start schedules Run and starts the scheduler.
func (j *DeadlineReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("deadline reminder job failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("deadline reminder job started", zap.String("schedule", j.spec), zap.Int("days", j.days))
	return nil
}

// Stop stops the scheduler and waits for a running reminder to finish.
func (j *DeadlineReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("deadline reminder job stopped")
}

// Run logs one line per due order and returns how many were found.
func (j *DeadlineReminderJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetDueOrdersQuery(j.days)
	if err != nil {
		return 0, err
	}

	due, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	today := j.now().UTC()
	for _, o := range due {
		fields := []zap.Field{
			zap.Int64("order_id", o.ID.Int64()),
			zap.String("customer", o.CustomerName),
			zap.String("item_type", o.ItemType),
			zap.String("status", o.Status.String()),
			zap.String("deadline", o.Deadline.String()),
		}
		if o.Deadline.Time().Before(today.Truncate(24 * time.Hour)) {
			j.logger.Warn("order is overdue", fields...)
			continue
		}
		j.logger.Info("order deadline is approaching", fields...)
	}

	return len(due), nil
}
