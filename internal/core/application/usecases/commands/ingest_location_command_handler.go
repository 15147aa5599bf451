package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/tracking"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// EventTypeLocationUpdated is the realtime event emitted for every accepted ping.
const EventTypeLocationUpdated = "location.updated"

// LocationUpdate is the payload of EventTypeLocationUpdated.
type LocationUpdate struct {
	OrderID    string    `json:"orderId"`
	Lat        float64   `json:"lat"`
	Long       float64   `json:"long"`
	RecordedAt time.Time `json:"recordedAt"`
}

// IngestLocationCommandHandler appends a ping to the order's delivery
// tracking and republishes it to the customer's realtime channel.
//
// Appends for one order are serialized by the tracking row lock taken in
// GetOrCreateForUpdate, so recordedAt follows append order. The push happens
// after commit and is best-effort: a failed push is logged and does not fail
// the ingestion.
type IngestLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
	notifier   ports.Notifier
	policy     services.AccessPolicy
	logger     *slog.Logger
}

// NewIngestLocationCommandHandler creates the handler.
func NewIngestLocationCommandHandler(
	uowFactory TrackingUoWFactory,
	notifier ports.Notifier,
	policy services.AccessPolicy,
	logger *slog.Logger,
) IngestLocationCommandHandler {
	return IngestLocationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     policy,
		logger:     logger.With("component", "ingest-location"),
	}
}

// Handle stores the reading and returns the appended entry.
func (h IngestLocationCommandHandler) Handle(ctx context.Context, cmd IngestLocationCommand) (tracking.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return tracking.Entry{}, err
	}
	if err := h.policy.AuthorizeRole(cmd.Actor(), services.ActionPushLocation); err != nil {
		return tracking.Entry{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return tracking.Entry{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// a reassignment committing mid-append would let the previous partner through
	o, err := uow.OrderRepository().GetForShare(ctx, cmd.OrderID())
	if err != nil {
		return tracking.Entry{}, err
	}

	if err = h.policy.Authorize(cmd.Actor(), services.ActionPushLocation, services.Resource{
		AssignedPartnerID: o.DeliveryPartner(),
	}); err != nil {
		return tracking.Entry{}, err
	}

	now := time.Now().UTC()
	trackingRepo := uow.TrackingRepository()
	tr, err := trackingRepo.GetOrCreateForUpdate(ctx, o.ID(), cmd.Actor().ID(), now)
	if err != nil {
		return tracking.Entry{}, err
	}

	entry, err := tr.Append(cmd.Actor().ID(), cmd.Point(), now)
	if err != nil {
		return tracking.Entry{}, err
	}

	if err = trackingRepo.Save(ctx, tr); err != nil {
		return tracking.Entry{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return tracking.Entry{}, err
	}

	update := LocationUpdate{
		OrderID:    o.ID().String(),
		Lat:        entry.Point().Lat(),
		Long:       entry.Point().Long(),
		RecordedAt: entry.RecordedAt(),
	}
	if err = h.notifier.Notify(ctx, o.CustomerID(), EventTypeLocationUpdated, update); err != nil {
		h.logger.WarnContext(ctx, "failed to push location update",
			"order_id", o.ID().String(), "error", err)
	}

	return entry, nil
}
