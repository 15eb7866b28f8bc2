package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type GroundRepo interface {
	Create(ctx context.Context, g *domain.Ground) error
	GetByID(ctx context.Context, id string) (*domain.Ground, error)
	List(ctx context.Context) ([]*domain.Ground, error)
	SoftDelete(ctx context.Context, id string) error
	AddDocument(ctx context.Context, d *domain.GroundDocument) error
	ListDocuments(ctx context.Context, groundID string) ([]*domain.GroundDocument, error)
}
