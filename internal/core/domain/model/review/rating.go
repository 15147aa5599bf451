package review

import (
	"foodorder/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a review score in [MinRating, MaxRating].
type Rating int

// NewRating validates v.
func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return 0, errs.NewValueIsOutOfRangeError("rating", v, MinRating, MaxRating)
	}
	return Rating(v), nil
}

func (r Rating) Int() int { return int(r) }
