package service

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports"
)

type BookingService struct {
	repo ports.BookingRepo
}

func NewBookingService(repo ports.BookingRepo) *BookingService {
	return &BookingService{repo: repo}
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) ListByPlayer(ctx context.Context, playerID string) ([]*domain.Booking, error) {
	return s.repo.ListByPlayer(ctx, playerID)
}
