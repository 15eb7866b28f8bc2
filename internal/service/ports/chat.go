package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type ChatRepo interface {
	Insert(ctx context.Context, m *domain.ChatMessage) error
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.ChatMessage, error)
}
