package kernel

import (
	"fmt"

	"gelsin/internal/pkg/errs"
	"gelsin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney constructors")

// Money is an immutable monetary amount. It wraps a decimal value so that
// menu prices and order totals survive arithmetic exactly (2 x 25.50 is
// 51.00, never 50.999...). Amounts are never negative.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(25.50)
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.MulInt(2) // 51.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromFloat creates a Money value from a float amount, such as a
// price received over the wire. Returns an error if the amount is negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney creates a valid Money value of zero.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for serialization.
// Money values in this system have at most two decimal places, so the
// conversion is lossless in practice.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(qty int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(qty))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two Money values represent the same amount.
// Trailing zeroes are insignificant: 51 equals 51.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks that the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
