package tracking

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrTrackingIsNotConstructed is returned when a Tracking was not created via
// NewTracking or RestoreTracking.
var ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking constructor")

// Tracking is the DeliveryTracking of one order, created lazily on the first
// ping.
//
// Invariants:
//   - entries are only appended, never changed or reordered
//   - recordedAt is non-decreasing in append order
type Tracking struct {
	orderID    kernel.UUID
	partnerID  kernel.UUID
	latest     *Entry
	appended   []Entry
	createdAt  time.Time
	archivedAt *time.Time

	isNew         bool
	isConstructed bool
}

// NewTracking starts an empty history for orderID.
func NewTracking(orderID, partnerID kernel.UUID, now time.Time) (*Tracking, error) {
	if err := errors.Join(
		orderID.Validate(),
		partnerID.Validate(),
	); err != nil {
		return nil, err
	}
	return &Tracking{
		orderID:       orderID,
		partnerID:     partnerID,
		createdAt:     now,
		isNew:         true,
		isConstructed: true,
	}, nil
}

// RestoreTracking rebuilds a Tracking from storage with its latest entry, if any.
func RestoreTracking(orderID, partnerID kernel.UUID, latest *Entry, createdAt time.Time, archivedAt *time.Time) *Tracking {
	return &Tracking{
		orderID:       orderID,
		partnerID:     partnerID,
		latest:        latest,
		createdAt:     createdAt,
		archivedAt:    archivedAt,
		isConstructed: true,
	}
}

// Validate ensures the Tracking instance was properly constructed.
func (t *Tracking) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackingIsNotConstructed
	}
	return nil
}

func (t *Tracking) OrderID() kernel.UUID   { return t.orderID }
func (t *Tracking) PartnerID() kernel.UUID { return t.partnerID }
func (t *Tracking) CreatedAt() time.Time   { return t.createdAt }
func (t *Tracking) ArchivedAt() *time.Time { return t.archivedAt }
func (t *Tracking) IsNew() bool            { return t.isNew }
func (t *Tracking) IsArchived() bool       { return t.archivedAt != nil }

// Latest returns the most recently appended entry, nil for an empty history.
func (t *Tracking) Latest() *Entry {
	if t.latest == nil {
		return nil
	}
	e := *t.latest
	return &e
}

// Appended returns the entries appended since the aggregate was loaded, in order.
func (t *Tracking) Appended() []Entry {
	out := make([]Entry, len(t.appended))
	copy(out, t.appended)
	return out
}

// Append records a reading from partnerID received at now. Duplicate and
// out-of-order coordinates are accepted as is. recordedAt is clamped to the
// previous entry so that a clock step backwards cannot reorder the history.
func (t *Tracking) Append(partnerID kernel.UUID, point kernel.GeoPoint, now time.Time) (Entry, error) {
	if err := errors.Join(partnerID.Validate(), point.Validate()); err != nil {
		return Entry{}, err
	}
	if t.IsArchived() {
		return Entry{}, errs.NewAccessDeniedErrorWithCause(
			"append delivery location",
			fmt.Errorf("tracking of order %s is archived", t.orderID),
		)
	}

	recordedAt := now
	if t.latest != nil && recordedAt.Before(t.latest.recordedAt) {
		recordedAt = t.latest.recordedAt
	}

	e := NewEntry(point, recordedAt)
	t.partnerID = partnerID
	t.latest = &e
	t.appended = append(t.appended, e)
	return e, nil
}

// MarkPersisted forgets the appended entries once they were written.
func (t *Tracking) MarkPersisted() {
	t.appended = nil
	t.isNew = false
}

// MarkArchived records that the history was exported.
func (t *Tracking) MarkArchived(now time.Time) {
	if t.archivedAt == nil {
		t.archivedAt = &now
	}
}
