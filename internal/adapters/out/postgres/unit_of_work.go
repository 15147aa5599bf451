// Package postgres provides the GORM-based Unit of Work of the fulfillment
// core. A unit of work owns one database transaction; every repository it
// hands out after Begin runs inside that transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	// ... mutate o
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// After a successful Commit the domain events recorded by the aggregates that
// went through an order repository are handed to the EventPublisher. A
// publication failure is logged and not returned: the transaction is already
// durable at that point.
//
// Each unit of work is single-use and must not be shared between goroutines.
package postgres

import (
	"context"
	"log/slog"

	"foodorder/internal/adapters/out/postgres/accountrepo"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/reviewrepo"
	"foodorder/internal/adapters/out/postgres/trackingrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool, event publisher and logger.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates the factory. publisher may be nil, in
// which case events are dropped after commit.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit-of-work"),
	}
}

// Create returns a fresh unit of work.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and collects the
// aggregates written through it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. A second call on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction durable and then publishes the domain events
// of tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction and the tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is
// the normal case for the deferred rollback after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// TrackAggregate registers an aggregate written within this unit of work.
// Called by repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn())
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return catalogrepo.NewGormRestaurantRepository(uow.conn())
}

func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return catalogrepo.NewGormMenuItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) RatingRepository() ports.RatingRepository {
	return catalogrepo.NewGormRatingRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return accountrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return accountrepo.NewGormAddressRepository(uow.conn())
}

// publishEvents hands out the events of every tracked aggregate once, even
// when the same aggregate was tracked more than once.
func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	seen := make(map[kernel.UUID]bool, len(tracked))
	var events []kernel.DomainEvent
	for _, t := range tracked {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true

		source, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}

	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish domain events",
			"events", len(events), "error", err)
	}
}
