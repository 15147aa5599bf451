package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories
// returned after Begin share its transaction. Domain events of aggregates
// written through it are published after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	TrackingRepository() TrackingRepository
	ReviewRepository() ReviewRepository
	RestaurantRepository() RestaurantRepository
	MenuItemRepository() MenuItemRepository
	RatingRepository() RatingRepository
	UserRepository() UserRepository
	AddressRepository() AddressRepository
}
