package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultRatingReconcileSchedule runs the reconciliation hourly.
const DefaultRatingReconcileSchedule = "0 0 * * * *"

type ratingReconciler interface {
	Handle(ctx context.Context) (int, error)
}

// RatingReconcileJob periodically recomputes the stored rating of every
// reviewed restaurant and menu item.
type RatingReconcileJob struct {
	handler  ratingReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRatingReconcileJob creates the job. schedule is a six field cron
// expression with seconds.
func NewRatingReconcileJob(handler ratingReconciler, schedule string, logger *slog.Logger) *RatingReconcileJob {
	if schedule == "" {
		schedule = DefaultRatingReconcileSchedule
	}
	return &RatingReconcileJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rating_reconcile_job"),
	}
}

// RunOnce performs a single reconciliation.
func (j *RatingReconcileJob) RunOnce(ctx context.Context) {
	n, err := j.handler.Handle(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Rating reconciliation failed", "recomputed", n, "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Rating reconciliation finished", "recomputed", n)
}

func (j *RatingReconcileJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconcile job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running reconciliation.
func (j *RatingReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rating reconcile job stopped")
}
