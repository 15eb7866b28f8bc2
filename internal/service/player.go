package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PlayerService struct {
	repo   ports.PlayerRepo
	logger logger.Logger
}

func NewPlayerService(repo ports.PlayerRepo, log logger.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: log}
}

func (s *PlayerService) Create(ctx context.Context, in domain.CreatePlayerInput) (*domain.Player, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if in.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", domain.ErrValidation)
	}

	player := &domain.Player{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Phone:          in.Phone,
		Age:            in.Age,
		Gender:         in.Gender,
		Position:       in.Position,
		TelegramChatID: in.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	return player, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (*domain.Player, error) {
	return s.repo.GetByID(ctx, id)
}

// Connect creates the symmetric edge between two players. The pair is
// normalized so (a, b) and (b, a) map to the same row.
func (s *PlayerService) Connect(ctx context.Context, playerID, peerID string) (*domain.PlayerConnection, error) {
	if playerID == peerID {
		return nil, fmt.Errorf("%w: cannot connect a player to themselves", domain.ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("check player: %w", err)
	}
	if _, err := s.repo.GetByID(ctx, peerID); err != nil {
		return nil, fmt.Errorf("check peer: %w", err)
	}

	if playerID > peerID {
		playerID, peerID = peerID, playerID
	}

	conn := &domain.PlayerConnection{
		ID:        uuid.New().String(),
		PlayerID:  playerID,
		PeerID:    peerID,
		Status:    domain.ConnectionAccepted,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Connect(ctx, conn); err != nil {
		return nil, fmt.Errorf("connect players: %w", err)
	}

	return conn, nil
}

func (s *PlayerService) Connections(ctx context.Context, playerID string) ([]*domain.PlayerConnection, error) {
	return s.repo.ListConnections(ctx, playerID)
}
