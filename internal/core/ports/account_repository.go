package ports

import (
	"context"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

// UserRepository resolves users by id.
type UserRepository interface {
	// Get returns errs.ObjectNotFoundError when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
}

// AddressRepository resolves delivery addresses by id.
type AddressRepository interface {
	// Get returns errs.ObjectNotFoundError when the address does not exist.
	Get(ctx context.Context, id kernel.UUID) (*account.Address, error)
}
