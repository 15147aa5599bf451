package commands

import (
	"context"
	"errors"
	"fmt"
)

// RecomputeRatingCommandHandler rewrites a target's rating under the target
// lock. It is the same computation review mutations run, exposed for drift
// repair.
type RecomputeRatingCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewRecomputeRatingCommandHandler creates the handler.
func NewRecomputeRatingCommandHandler(uowFactory ReviewUoWFactory) RecomputeRatingCommandHandler {
	return RecomputeRatingCommandHandler{uowFactory: uowFactory}
}

// Handle returns the stored mean.
func (h RecomputeRatingCommandHandler) Handle(ctx context.Context, cmd RecomputeRatingCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RatingRepository().LockTarget(ctx, cmd.Target()); err != nil {
		return 0, err
	}

	mean, err := recomputeRating(ctx, uow, cmd.Target())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return mean, nil
}

// ReconcileRatingsCommandHandler recomputes every reviewed target, one
// transaction per target.
type ReconcileRatingsCommandHandler struct {
	uowFactory ReviewUoWFactory
	recompute  RecomputeRatingCommandHandler
}

// NewReconcileRatingsCommandHandler creates the handler.
func NewReconcileRatingsCommandHandler(uowFactory ReviewUoWFactory) ReconcileRatingsCommandHandler {
	return ReconcileRatingsCommandHandler{
		uowFactory: uowFactory,
		recompute:  NewRecomputeRatingCommandHandler(uowFactory),
	}
}

// Handle returns the number of recomputed targets and the joined errors of
// those that failed.
func (h ReconcileRatingsCommandHandler) Handle(ctx context.Context) (int, error) {
	uow := h.uowFactory.Create()
	targets, err := uow.ReviewRepository().ReviewedTargets(ctx)
	if err != nil {
		return 0, err
	}

	done := 0
	var failures []error
	for _, target := range targets {
		cmd, cmdErr := NewRecomputeRatingCommand(target)
		if cmdErr == nil {
			_, cmdErr = h.recompute.Handle(ctx, cmd)
		}
		if cmdErr != nil {
			failures = append(failures, fmt.Errorf("recompute %s: %w", target, cmdErr))
			continue
		}
		done++
	}

	return done, errors.Join(failures...)
}
