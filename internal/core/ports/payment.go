package ports

import (
	"context"

	"gelsin/internal/core/domain/model/kernel"
)

// PaymentInstrument is the tender presented when placing an order. The
// bundled mock provider approves iff MockSuccess is set; a real gateway
// adapter would ignore it and charge the token instead.
type PaymentInstrument struct {
	MockSuccess bool
	Token       string
}

// PaymentAuthorization is the provider's receipt for an approved charge.
type PaymentAuthorization struct {
	Reference string
}

// PaymentProvider authorizes a charge for the full order total before the
// order is persisted. A declined authorization aborts order placement, so
// no order is ever stored unpaid.
type PaymentProvider interface {
	Authorize(ctx context.Context, amount kernel.Money, instrument PaymentInstrument) (PaymentAuthorization, error)
}
