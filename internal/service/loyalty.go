package service

import (
	"context"
	"fmt"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/monitoring"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LoyaltyService credits match and point counters for completed bookings.
// Credits are applied at most once per booking; the ledger holds the
// processed marker.
type LoyaltyService struct {
	repo           ports.LoyaltyRepo
	logger         logger.Logger
	pointsPerMatch int
}

func NewLoyaltyService(repo ports.LoyaltyRepo, log logger.Logger, pointsPerMatch int) *LoyaltyService {
	return &LoyaltyService{
		repo:           repo,
		logger:         log,
		pointsPerMatch: pointsPerMatch,
	}
}

// Apply is idempotent: the second call for the same booking is a no-op.
func (s *LoyaltyService) Apply(ctx context.Context, bookingID string) (bool, error) {
	applied, err := s.repo.Apply(ctx, bookingID, s.pointsPerMatch)
	if err != nil {
		return false, fmt.Errorf("apply loyalty: %w", err)
	}

	if applied {
		monitoring.AddLoyaltyCredits(1)
		s.logger.Info("loyalty credited",
			logger.String("booking_id", bookingID),
		)
	}

	return applied, nil
}

// SettleDue credits every completed, paid, not-yet-credited booking.
func (s *LoyaltyService) SettleDue(ctx context.Context) (int, error) {
	ids, err := s.repo.ListDue(ctx)
	if err != nil {
		return 0, fmt.Errorf("list due bookings: %w", err)
	}

	settled := 0
	for _, id := range ids {
		applied, err := s.Apply(ctx, id)
		if err != nil {
			s.logger.Error("failed to settle booking",
				logger.String("booking_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		if applied {
			settled++
		}
	}

	return settled, nil
}

func (s *LoyaltyService) ByPlayer(ctx context.Context, playerID string) (*domain.Loyalty, error) {
	return s.repo.GetByPlayer(ctx, playerID)
}
