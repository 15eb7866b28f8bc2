package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

type ChargeInput struct {
	PaymentID string
	Amount    decimal.Decimal
	Currency  string
	Method    string
	CardToken string
}

// PaymentGateway is the external processor. Charge returns the gateway's
// charge reference; the asynchronous webhook callback carries the outcome.
type PaymentGateway interface {
	Charge(ctx context.Context, in ChargeInput) (ref string, err error)
}
