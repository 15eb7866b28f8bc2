package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment is one-to-one with a booking. It is created against a pending
// reservation; BookingID is filled in the same transaction that confirms the
// reservation and materializes the booking.
type Payment struct {
	ID            string          `json:"id"`
	ReservationID string          `json:"reservation_id"`
	BookingID     *string         `json:"booking_id,omitempty"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	GatewayRef    string          `json:"gateway_ref,omitempty"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type InitiatePaymentInput struct {
	ReservationID string
	Method        string
	Amount        decimal.Decimal
	CardToken     string
}
