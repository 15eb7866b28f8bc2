package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	SetGatewayRef(ctx context.Context, id, ref string) error
	// CompleteSuccess applies payment success and reservation confirmation
	// as one transaction. If the reservation expired mid-payment the payment
	// is forced FAILED in the same transaction and
	// domain.ErrReservationExpired is returned.
	CompleteSuccess(ctx context.Context, id string) (*domain.Booking, error)
	// CompleteFailure marks the payment FAILED and releases its reservation
	// in one transaction.
	CompleteFailure(ctx context.Context, id string) error
	Refund(ctx context.Context, id string) error
}
