package services

import "foodorder/internal/core/domain/model/review"

// MeanRating returns the arithmetic mean of ratings, 0 for none.
func MeanRating(ratings []review.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Int()
	}
	return float64(sum) / float64(len(ratings))
}
