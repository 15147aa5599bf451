package commands

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// DefaultArchiveBatchSize is the number of trackings archived per run.
const DefaultArchiveBatchSize = 50

var ErrArchiveDeliveryTrackingCommandIsNotConstructed = errors.New(
	"ArchiveDeliveryTrackingCommand must be created via NewArchiveDeliveryTrackingCommand constructor",
)

// ArchiveDeliveryTrackingCommand exports the location history of finished
// deliveries to the archive.
type ArchiveDeliveryTrackingCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

// NewArchiveDeliveryTrackingCommand creates the command. batchSize must be positive.
func NewArchiveDeliveryTrackingCommand(batchSize int) (ArchiveDeliveryTrackingCommand, error) {
	if batchSize <= 0 {
		return ArchiveDeliveryTrackingCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return ArchiveDeliveryTrackingCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveDeliveryTrackingCommand) Validate() error {
	return c.guard.Validate(ErrArchiveDeliveryTrackingCommandIsNotConstructed)
}

func (c ArchiveDeliveryTrackingCommand) BatchSize() int { return c.batchSize }
