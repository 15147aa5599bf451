package tracking

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// Entry is one position reading.
type Entry struct {
	point      kernel.GeoPoint
	recordedAt time.Time
}

// NewEntry creates an entry. It is used by the repository to rebuild entries
// read from storage.
func NewEntry(point kernel.GeoPoint, recordedAt time.Time) Entry {
	return Entry{point: point, recordedAt: recordedAt}
}

func (e Entry) Point() kernel.GeoPoint { return e.point }

func (e Entry) RecordedAt() time.Time { return e.recordedAt }
