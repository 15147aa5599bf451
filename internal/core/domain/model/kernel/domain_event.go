package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Aggregates collect events
// while they change and the unit of work publishes them once the transaction
// has committed.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// BaseEvent carries the fields every DomainEvent shares. Concrete events embed it.
type BaseEvent struct {
	id          UUID
	name        string
	aggregateID UUID
	occurredAt  time.Time
}

// NewBaseEvent stamps a new event of the given name.
func NewBaseEvent(name string, aggregateID UUID, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		id:          NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  occurredAt,
	}
}

func (e BaseEvent) EventID() UUID         { return e.id }
func (e BaseEvent) EventName() string     { return e.name }
func (e BaseEvent) AggregateID() UUID     { return e.aggregateID }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
