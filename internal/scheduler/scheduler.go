package scheduler

import (
	"context"
	"time"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type expirySweeper interface {
	SweepExpired(ctx context.Context) ([]*domain.Reservation, error)
}

type loyaltySettler interface {
	SettleDue(ctx context.Context) (int, error)
}

// Scheduler drives the two background duties of the core: expiring overdue
// reservations and crediting loyalty for completed bookings.
type Scheduler struct {
	sweeper        expirySweeper
	settler        loyaltySettler
	sweepInterval  time.Duration
	settleInterval time.Duration
	logger         logger.Logger
}

func New(
	sweeper expirySweeper,
	settler loyaltySettler,
	sweepInterval time.Duration,
	settleInterval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:        sweeper,
		settler:        settler,
		sweepInterval:  sweepInterval,
		settleInterval: settleInterval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	sweepTicker := time.NewTicker(s.sweepInterval)
	defer sweepTicker.Stop()

	settleTicker := time.NewTicker(s.settleInterval)
	defer settleTicker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("sweep_interval", s.sweepInterval),
		logger.Duration("settle_interval", s.settleInterval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-sweepTicker.C:
			s.sweep(ctx)
		case <-settleTicker.C:
			s.settle(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	expired, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range expired {
		s.logger.Info("reservation expired",
			logger.String("reservation_id", r.ID),
			logger.String("ground_id", r.GroundID),
			logger.String("player_id", r.PlayerID),
		)
	}
}

func (s *Scheduler) settle(ctx context.Context) {
	settled, err := s.settler.SettleDue(ctx)
	if err != nil {
		s.logger.Error("failed to settle loyalty credits",
			logger.String("error", err.Error()),
		)
		return
	}

	if settled > 0 {
		s.logger.Info("loyalty credits settled",
			logger.Int("count", settled),
		)
	}
}
