package review

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// ErrReviewIsNotConstructed is returned when a Review was not created via
// NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is a customer's rating of one restaurant or menu item. At most one
// review exists per (customer, target); the repository enforces it.
type Review struct {
	id         kernel.UUID
	customerID kernel.UUID
	target     Target
	rating     Rating
	comment    string
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewReview validates and creates a review.
func NewReview(id, customerID kernel.UUID, target Target, rating Rating, comment string, now time.Time) (*Review, error) {
	if _, err := NewRating(int(rating)); err != nil {
		return nil, err
	}
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		target.Validate(),
	); err != nil {
		return nil, err
	}

	return &Review{
		id:            id,
		customerID:    customerID,
		target:        target,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreReview rebuilds a review from storage.
func RestoreReview(id, customerID kernel.UUID, target Target, rating Rating, comment string, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		customerID:    customerID,
		target:        target,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

// Validate ensures the Review instance was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID         { return r.id }
func (r *Review) CustomerID() kernel.UUID { return r.customerID }
func (r *Review) Target() Target          { return r.target }
func (r *Review) Rating() Rating          { return r.rating }
func (r *Review) Comment() string         { return r.comment }
func (r *Review) CreatedAt() time.Time    { return r.createdAt }
func (r *Review) UpdatedAt() time.Time    { return r.updatedAt }

// IsWrittenBy reports whether customerID owns the review.
func (r *Review) IsWrittenBy(customerID kernel.UUID) bool {
	return r.customerID.IsEqual(customerID)
}

// Edit changes rating and/or comment. Nil arguments leave the field as is.
// The target never changes.
func (r *Review) Edit(rating *Rating, comment *string, now time.Time) error {
	if rating != nil {
		if _, err := NewRating(int(*rating)); err != nil {
			return err
		}
		r.rating = *rating
	}
	if comment != nil {
		r.comment = *comment
	}
	r.updatedAt = now
	return nil
}
