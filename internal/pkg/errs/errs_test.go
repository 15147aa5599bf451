package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("order", "7f0c"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 7f0c",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("order", "7f0c", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: order, ID is: 7f0c (cause: boom)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("paymentMethod"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: paymentMethod",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("status", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: status (cause: boom)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("rating", 6, 1, 5),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 6 is rating, min value is 1, max value is 5",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("limit", 0, 1, 100, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is limit, min value is 1, max value is 100 (cause: boom)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("items"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("items", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items (cause: boom)",
		},
		{
			name:     "stale version",
			err:      errs.NewVersionIsInvalidError("order"),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: order",
		},
		{
			name:     "stale version with cause",
			err:      errs.NewVersionIsInvalidErrorWithCause("order", cause),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: order (cause: boom)",
		},
		{
			name:     "access denied",
			err:      errs.NewAccessDeniedError("read delivery location"),
			sentinel: errs.ErrAccessDenied,
			message:  "access denied: read delivery location",
		},
		{
			name:     "access denied with cause",
			err:      errs.NewAccessDeniedErrorWithCause("change order status", cause),
			sentinel: errs.ErrAccessDenied,
			message:  "access denied: change order status (cause: boom)",
		},
		{
			name:     "already exists",
			err:      errs.NewObjectAlreadyExistsError("review", "abc"),
			sentinel: errs.ErrObjectAlreadyExists,
			message:  "object already exists: review is abc",
		},
		{
			name:     "already exists with cause",
			err:      errs.NewObjectAlreadyExistsErrorWithCause("Idempotency-Key", "k1", cause),
			sentinel: errs.ErrObjectAlreadyExists,
			message:  "object already exists: param is: Idempotency-Key, ID is: k1 (cause: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrVersionIsInvalid,
		errs.ErrAccessDenied,
		errs.ErrObjectAlreadyExists,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestJoinedErrorsKeepEveryKind(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("restaurantId"),
		errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "quantity", rangeErr.ParamName)
	assert.Equal(t, 0, rangeErr.Value)
}

func TestWrappedErrorIsStillClassified(t *testing.T) {
	err := fmt.Errorf("load order: %w", errs.NewObjectNotFoundError("order", "1"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "order", notFound.ParamName)
}

func TestMessagesStayOnOneLine(t *testing.T) {
	tests := []error{
		errs.NewValueIsOutOfRangeError("comment", "nice\nfood", 0, 10),
		errs.NewObjectAlreadyExistsError("review", "a\r\nb"),
	}
	for _, err := range tests {
		assert.NotContains(t, err.Error(), "\n")
		assert.NotContains(t, err.Error(), "\r")
	}
	assert.Contains(t, tests[0].Error(), "nice food")
}
