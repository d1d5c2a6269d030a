package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via one of its constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoneyFromString, NewMoneyFromFloat, or ZeroMoney")

// Money is an immutable value object representing a non-negative monetary
// amount. It uses exact decimal arithmetic so that line totals never suffer
// binary floating point drift.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("30.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MulInt(2) // 60.00
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoneyFromString creates a Money from its decimal string representation.
// Returns an error when the string is not a valid decimal or the amount is
// negative.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return newMoney(amount)
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Returns an error when the amount is negative.
func NewMoneyFromFloat(f float64) (Money, error) {
	return newMoney(decimal.NewFromFloat(f))
}

// ZeroMoney creates a valid Money with a zero amount.
// Used as the seed when summing totals.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

func newMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// MulInt returns a new Money with the amount multiplied by quantity.
// The receiver must be a properly constructed Money; quantity must be
// non-negative, which order lines guarantee before calling.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns a new Money holding the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two monetary amounts for numeric equality, so "30" and
// "30.00" are considered equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
