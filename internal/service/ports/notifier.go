package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type BookingNotifier interface {
	NotifyReservationCreated(ctx context.Context, player *domain.Player, ground *domain.Ground, r *domain.Reservation)
	NotifyBookingConfirmed(ctx context.Context, player *domain.Player, ground *domain.Ground, b *domain.Booking)
	NotifyReservationExpired(ctx context.Context, player *domain.Player, ground *domain.Ground, r *domain.Reservation)
}
