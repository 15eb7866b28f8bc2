package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type PlayerRepo interface {
	Create(ctx context.Context, p *domain.Player) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	Connect(ctx context.Context, c *domain.PlayerConnection) error
	ListConnections(ctx context.Context, playerID string) ([]*domain.PlayerConnection, error)
}
