package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByPlayer(ctx context.Context, playerID string) ([]*domain.Booking, error)
}
