// Package payment provides the bundled mock implementation of the payment
// provider port. It stands in for a real gateway: the instrument's mock
// flag decides the outcome, and approved charges get a unique reference.
package payment

import (
	"context"

	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/core/ports"
	"gelsin/internal/pkg/errs"

	"github.com/google/uuid"
)

// MockProvider implements PaymentProvider without contacting any gateway.
// Approval is decided by the instrument alone, so placement flows are fully
// testable offline.
type MockProvider struct{}

// NewMockProvider creates the mock payment provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Authorize approves the charge iff the instrument carries the mock
// success flag. Declines return a PaymentDeclinedError carrying the
// refused amount.
func (p *MockProvider) Authorize(
	_ context.Context, amount kernel.Money, instrument ports.PaymentInstrument,
) (ports.PaymentAuthorization, error) {
	if err := amount.Validate(); err != nil {
		return ports.PaymentAuthorization{}, err
	}

	if !instrument.MockSuccess {
		return ports.PaymentAuthorization{}, errs.NewPaymentDeclinedError(amount.String())
	}

	return ports.PaymentAuthorization{
		Reference: uuid.NewString(),
	}, nil
}
