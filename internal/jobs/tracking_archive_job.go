package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultTrackingArchiveSchedule runs the archival every ten minutes.
	DefaultTrackingArchiveSchedule = "0 */10 * * * *"
	trackingArchiveBatchSize       = 100
)

type trackingArchiver interface {
	Handle(ctx context.Context, cmd commands.ArchiveDeliveryTrackingCommand) (int, error)
}

// TrackingArchiveJob exports the location history of finished deliveries in
// batches.
type TrackingArchiveJob struct {
	handler  trackingArchiver
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewTrackingArchiveJob(handler trackingArchiver, schedule string, logger *slog.Logger) *TrackingArchiveJob {
	if schedule == "" {
		schedule = DefaultTrackingArchiveSchedule
	}
	return &TrackingArchiveJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "tracking_archive_job"),
	}
}

// RunOnce archives one batch. Per-order failures do not stop the batch.
func (j *TrackingArchiveJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewArchiveDeliveryTrackingCommand(trackingArchiveBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking archive job misconfigured", "error", err)
		return
	}

	n, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking archive job failed", "archived", n, "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Tracking archive job finished", "archived", n)
	}
}

func (j *TrackingArchiveJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking archive job started", "schedule", j.schedule)
	return nil
}

func (j *TrackingArchiveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tracking archive job stopped")
}
