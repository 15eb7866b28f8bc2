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

// RosterService arbitrates join requests for team bookings. Capacity comes
// from the ground size and is enforced inside the ledger transaction, so a
// capacity miss never leaks a team member.
type RosterService struct {
	rosterRepo  ports.RosterRepo
	bookingRepo ports.BookingRepo
	groundRepo  ports.GroundRepo
	publisher   ports.EventPublisher
	logger      logger.Logger
}

func NewRosterService(
	rosterRepo ports.RosterRepo,
	bookingRepo ports.BookingRepo,
	groundRepo ports.GroundRepo,
	publisher ports.EventPublisher,
	log logger.Logger,
) *RosterService {
	return &RosterService{
		rosterRepo:  rosterRepo,
		bookingRepo: bookingRepo,
		groundRepo:  groundRepo,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *RosterService) RequestJoin(ctx context.Context, bookingID, playerID, position string) (*domain.JoinRequest, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.BookingType != domain.BookingTeam {
		return nil, domain.ErrBookingNotTeamType
	}

	if booking.PlayerID == playerID {
		return nil, domain.ErrAlreadyMember
	}

	member, err := s.rosterRepo.IsMember(ctx, bookingID, playerID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if member {
		return nil, domain.ErrAlreadyMember
	}

	request := &domain.JoinRequest{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		PlayerID:  playerID,
		Position:  position,
		Status:    domain.JoinRequestPending,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.rosterRepo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("create join request: %w", err)
	}

	s.logger.Info("join request created",
		logger.String("request_id", request.ID),
		logger.String("booking_id", bookingID),
		logger.String("player_id", playerID),
	)

	return request, nil
}

func (s *RosterService) Decide(ctx context.Context, requestID string, accept bool) (*domain.JoinRequest, error) {
	request, err := s.rosterRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get join request: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, request.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	ground, err := s.groundRepo.GetByID(ctx, booking.GroundID)
	if err != nil {
		return nil, fmt.Errorf("get ground: %w", err)
	}

	decided, err := s.rosterRepo.Decide(ctx, requestID, accept, ground.TeamCapacity())
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			monitoring.ObserveJoinDecision("capacity_exceeded")
		}
		return nil, fmt.Errorf("decide join request: %w", err)
	}

	result := "rejected"
	if accept {
		result = "accepted"
	}
	monitoring.ObserveJoinDecision(result)

	s.logger.Info("join request decided",
		logger.String("request_id", requestID),
		logger.String("result", result),
	)

	if err = s.publisher.Publish(ctx, events.RKJoinRequestDecided, events.JoinRequestDecided{
		RequestID: decided.ID,
		BookingID: decided.BookingID,
		PlayerID:  decided.PlayerID,
		Accepted:  accept,
	}); err != nil {
		s.logger.Error("failed to publish join decision",
			logger.String("request_id", requestID),
			logger.String("error", err.Error()),
		)
	}

	return decided, nil
}

func (s *RosterService) Members(ctx context.Context, bookingID string) ([]*domain.TeamMember, error) {
	return s.rosterRepo.ListMembers(ctx, bookingID)
}
