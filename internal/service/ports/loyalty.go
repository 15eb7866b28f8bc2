package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type LoyaltyRepo interface {
	// Apply credits the booker and every team member of the booking exactly
	// once; the second call is a no-op and returns applied=false.
	Apply(ctx context.Context, bookingID string, points int) (applied bool, err error)
	// ListDue returns bookings whose slot has passed with a succeeded,
	// non-refunded payment and no loyalty credit yet.
	ListDue(ctx context.Context) ([]string, error)
	GetByPlayer(ctx context.Context, playerID string) (*domain.Loyalty, error)
}
