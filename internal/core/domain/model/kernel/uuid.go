package kernel

import (
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies entities and aggregates. It wraps github.com/google/uuid so
// the domain never handles the nil UUID as a valid identifier.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses s. The nil UUID is rejected.
//
// Example:
//
//	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
//	if err != nil {
//	    return err // ValueIsInvalidError
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("invalid UUID format", err)
	}
	return UUIDFromGoogle(id)
}

// UUIDFromGoogle wraps an already parsed uuid.UUID, typically read from storage.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// String returns the canonical textual form.
func (u UUID) String() string {
	return u.id.String()
}

// Google returns the wrapped uuid.UUID for persistence mappings.
func (u UUID) Google() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate fails for the zero UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
