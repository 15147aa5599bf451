package events

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
)

// LogPublisher writes events to the log instead of a broker. It is used when
// EVENTS_DRIVER is none.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "domain event",
			"name", e.EventName(),
			"aggregate_id", e.AggregateID().String(),
			"event_id", e.EventID().String(),
		)
	}
	return nil
}
