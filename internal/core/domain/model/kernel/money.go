package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when Money was not created through a constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative decimal amount. Prices are snapshotted as Money and
// order totals are derived from it, so arithmetic never goes through floats.
type Money struct { //nolint:recvcheck
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Multiply returns m × quantity. quantity must be positive.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}, nil
}

// IsEqual compares amounts numerically, so 2.5 equals 2.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate fails for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
