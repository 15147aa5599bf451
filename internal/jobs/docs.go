// Package jobs provides scheduled background tasks of the fulfillment core.
//
// Jobs are built on github.com/robfig/cron/v3 with six field expressions
// (seconds first).
//
// # Available Jobs
//
// 1. RatingReconcileJob - recomputes the stored rating of every reviewed
// restaurant and menu item, repairing drift after manual data fixes
// 2. TrackingArchiveJob - exports the location history of delivered and
// cancelled orders to the tracking archive and marks it archived
//
// # Usage
//
//	scheduled := []jobs.Job{
//		jobs.NewRatingReconcileJob(reconcileHandler, cfg.RatingReconcileSchedule, logger),
//	}
//	if cfg.S3Bucket != "" {
//		scheduled = append(scheduled, jobs.NewTrackingArchiveJob(archiveHandler, cfg.TrackingArchiveSchedule, logger))
//	}
//	jobManager := jobs.NewJobManager(scheduled...)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next run happens on schedule. Both jobs are
// idempotent: a rerun recomputes the same means and skips trackings that
// were archived already.
package jobs
