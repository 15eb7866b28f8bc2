package ports

import (
	"context"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type RosterRepo interface {
	CreateRequest(ctx context.Context, req *domain.JoinRequest) error
	GetRequest(ctx context.Context, id string) (*domain.JoinRequest, error)
	// Decide resolves a pending request. On accept the roster size is
	// checked against capacity and the team member is created in the same
	// transaction.
	Decide(ctx context.Context, requestID string, accept bool, capacity int) (*domain.JoinRequest, error)
	ListMembers(ctx context.Context, bookingID string) ([]*domain.TeamMember, error)
	IsMember(ctx context.Context, bookingID, playerID string) (bool, error)
}
