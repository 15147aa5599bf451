// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a validating constructor, a handler
// that authorizes the actor against the access policy, and a unit of work
// around the repository calls.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CatalogRepoFactory resolves restaurants and menu items.
	CatalogRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
		MenuItemRepository() ports.MenuItemRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// AccountRepoFactory resolves users and addresses.
	AccountRepoFactory interface {
		UserRepository() ports.UserRepository
		AddressRepository() ports.AddressRepository
	}

	// OrderUoW serves placement, status changes and partner assignment.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
		AccountRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TrackingUoW serves location ingestion and archival.
	TrackingUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// ReviewUoW serves review mutations and rating recomputation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.RatingRepository().LockTarget(ctx, target)
	//   err = uow.ReviewRepository().Add(ctx, r)
	//   // ... recompute
	//
	//   err = uow.Commit(ctx)
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
		RatingRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
