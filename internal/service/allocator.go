package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/events"
	"github.com/MahikaLakoul07/SportifyBackend/internal/monitoring"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AllocatorService owns the slot lifecycle: tentative reservations, the
// PENDING -> CONFIRMED transition and slot release. Serialization on the
// slot key lives in the ledger; this service never takes process-wide locks.
type AllocatorService struct {
	groundRepo      ports.GroundRepo
	reservationRepo ports.ReservationRepo
	playerRepo      ports.PlayerRepo
	notifier        ports.BookingNotifier
	publisher       ports.EventPublisher
	logger          logger.Logger
	ttl             time.Duration
	expiryWarning   time.Duration
}

func NewAllocatorService(
	groundRepo ports.GroundRepo,
	reservationRepo ports.ReservationRepo,
	playerRepo ports.PlayerRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	log logger.Logger,
	ttl time.Duration,
	expiryWarning time.Duration,
) *AllocatorService {
	return &AllocatorService{
		groundRepo:      groundRepo,
		reservationRepo: reservationRepo,
		playerRepo:      playerRepo,
		notifier:        notifier,
		publisher:       publisher,
		logger:          log,
		ttl:             ttl,
		expiryWarning:   expiryWarning,
	}
}

func (s *AllocatorService) Reserve(ctx context.Context, in domain.ReserveInput) (*domain.Reservation, error) {
	if in.DurationMin <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}
	if in.BookingType != domain.BookingSolo && in.BookingType != domain.BookingTeam {
		return nil, fmt.Errorf("%w: unknown booking type %q", domain.ErrValidation, in.BookingType)
	}

	player, err := s.playerRepo.GetByID(ctx, in.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("check player: %w", err)
	}

	ground, err := s.groundRepo.GetByID(ctx, in.GroundID)
	if err != nil {
		return nil, fmt.Errorf("check ground: %w", err)
	}

	if !ground.Covers(in.Date, in.StartMin, in.DurationMin) {
		monitoring.ObserveReservation("invalid_window")
		return nil, domain.ErrInvalidWindow
	}

	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:          uuid.New().String(),
		GroundID:    in.GroundID,
		PlayerID:    in.PlayerID,
		Date:        in.Date,
		StartMin:    in.StartMin,
		DurationMin: in.DurationMin,
		BookingType: in.BookingType,
		Status:      domain.ReservationPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
		UpdatedAt:   now,
	}

	if err = s.reservationRepo.Insert(ctx, reservation); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			monitoring.ObserveReservation("slot_taken")
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	monitoring.ObserveReservation("reserved")
	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("ground_id", in.GroundID),
		logger.String("player_id", in.PlayerID),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), player, ground, reservation)

	return reservation, nil
}

func (s *AllocatorService) Confirm(ctx context.Context, reservationID string) (*domain.Booking, error) {
	booking, err := s.reservationRepo.Confirm(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("reservation_id", reservationID),
	)

	go s.notifyConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *AllocatorService) Release(ctx context.Context, reservationID string) error {
	if err := s.reservationRepo.Release(ctx, reservationID); err != nil {
		return fmt.Errorf("release reservation: %w", err)
	}

	monitoring.ObserveReservation("released")
	s.logger.Info("reservation released",
		logger.String("reservation_id", reservationID),
	)

	return nil
}

func (s *AllocatorService) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

// SweepExpired warns about reservations close to their deadline, then
// expires every overdue one, freeing the slot keys. Only this sweep and an
// explicit release may take a reservation out of PENDING besides confirm.
func (s *AllocatorService) SweepExpired(ctx context.Context) ([]*domain.Reservation, error) {
	expiring, err := s.reservationRepo.ListExpiring(ctx, s.expiryWarning)
	if err != nil {
		s.logger.Error("failed to list expiring reservations",
			logger.String("error", err.Error()),
		)
	}
	for _, r := range expiring {
		s.publish(ctx, events.RKReservationExpiring, events.ReservationExpiring{
			ReservationID: r.ID,
			GroundID:      r.GroundID,
			PlayerID:      r.PlayerID,
			ExpiresAt:     r.ExpiresAt.Unix(),
		})
	}

	expired, err := s.reservationRepo.ExpireOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}

	if len(expired) > 0 {
		monitoring.AddExpiredReservations(len(expired))
		s.logger.Info("reservations expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *AllocatorService) notifyConfirmed(ctx context.Context, b *domain.Booking) {
	player, err := s.playerRepo.GetByID(ctx, b.PlayerID)
	if err != nil {
		s.logger.Error("failed to get player for confirm notification",
			logger.String("player_id", b.PlayerID),
		)
		return
	}

	ground, err := s.groundRepo.GetByID(ctx, b.GroundID)
	if err != nil {
		s.logger.Error("failed to get ground for confirm notification",
			logger.String("ground_id", b.GroundID),
		)
		return
	}

	s.notifier.NotifyBookingConfirmed(ctx, player, ground, b)
}

func (s *AllocatorService) notifyExpired(ctx context.Context, expired []*domain.Reservation) {
	for _, r := range expired {
		s.publish(ctx, events.RKReservationExpired, events.ReservationExpired{
			ReservationID: r.ID,
			GroundID:      r.GroundID,
			PlayerID:      r.PlayerID,
		})

		player, err := s.playerRepo.GetByID(ctx, r.PlayerID)
		if err != nil {
			s.logger.Error("failed to get player for expiry notification",
				logger.String("player_id", r.PlayerID),
			)
			continue
		}

		ground, err := s.groundRepo.GetByID(ctx, r.GroundID)
		if err != nil {
			s.logger.Error("failed to get ground for expiry notification",
				logger.String("ground_id", r.GroundID),
			)
			continue
		}

		s.notifier.NotifyReservationExpired(ctx, player, ground, r)
	}
}

// publish delivers a core event to the dispatcher; failures are logged and
// never affect core state.
func (s *AllocatorService) publish(ctx context.Context, key string, payload any) {
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		s.logger.Error("failed to publish event",
			logger.String("routing_key", key),
			logger.String("error", err.Error()),
		)
	}
}
