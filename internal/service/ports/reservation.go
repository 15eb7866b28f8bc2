package ports

import (
	"context"
	"time"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type ReservationRepo interface {
	// Insert atomically claims the slot key; a live reservation on the same
	// key surfaces as domain.ErrSlotTaken.
	Insert(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// Confirm transitions PENDING -> CONFIRMED and creates the booking in
	// one transaction, re-checking expiry atomically with the transition.
	Confirm(ctx context.Context, id string) (*domain.Booking, error)
	Release(ctx context.Context, id string) error
	ExpireOverdue(ctx context.Context) ([]*domain.Reservation, error)
	ListExpiring(ctx context.Context, within time.Duration) ([]*domain.Reservation, error)
}
