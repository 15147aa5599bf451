package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// ArchiveDeliveryTrackingCommandHandler copies the history of each
// terminal order's tracking to the archive and marks it archived. Every
// order is handled in its own transaction; a failure on one does not stop
// the others.
type ArchiveDeliveryTrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
	archive    ports.TrackingArchive
}

// NewArchiveDeliveryTrackingCommandHandler creates the handler.
func NewArchiveDeliveryTrackingCommandHandler(uowFactory TrackingUoWFactory, archive ports.TrackingArchive) ArchiveDeliveryTrackingCommandHandler {
	return ArchiveDeliveryTrackingCommandHandler{
		uowFactory: uowFactory,
		archive:    archive,
	}
}

// Handle returns the number of archived trackings and the joined errors of
// those that failed.
func (h ArchiveDeliveryTrackingCommandHandler) Handle(ctx context.Context, cmd ArchiveDeliveryTrackingCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orderIDs, err := h.listArchivable(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	archived := 0
	var failures []error
	for _, orderID := range orderIDs {
		if err = h.archiveOne(ctx, orderID); err != nil {
			failures = append(failures, fmt.Errorf("archive tracking of order %s: %w", orderID, err))
			continue
		}
		archived++
	}

	return archived, errors.Join(failures...)
}

func (h ArchiveDeliveryTrackingCommandHandler) listArchivable(ctx context.Context, limit int) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.TrackingRepository().ListArchivable(ctx, limit)
}

func (h ArchiveDeliveryTrackingCommandHandler) archiveOne(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TrackingRepository()
	tr, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}
	if tr.IsArchived() {
		return nil
	}

	history, err := repo.History(ctx, orderID)
	if err != nil {
		return err
	}

	if _, err = h.archive.Store(ctx, orderID, history); err != nil {
		return err
	}

	tr.MarkArchived(time.Now().UTC())
	if err = repo.Save(ctx, tr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
