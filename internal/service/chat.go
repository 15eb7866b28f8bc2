package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports"
)

// ChatService stores booking chat and enforces the only rule the core owns:
// participants only. Delivery is external.
type ChatService struct {
	chatRepo    ports.ChatRepo
	bookingRepo ports.BookingRepo
	rosterRepo  ports.RosterRepo
}

func NewChatService(chatRepo ports.ChatRepo, bookingRepo ports.BookingRepo, rosterRepo ports.RosterRepo) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		bookingRepo: bookingRepo,
		rosterRepo:  rosterRepo,
	}
}

func (s *ChatService) Post(ctx context.Context, bookingID, senderID, text string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text is required", domain.ErrValidation)
	}

	if err := s.authorize(ctx, bookingID, senderID); err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		SenderID:  senderID,
		Text:      text,
		SentAt:    time.Now().UTC(),
	}

	if err := s.chatRepo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	return msg, nil
}

func (s *ChatService) List(ctx context.Context, bookingID, requesterID string) ([]*domain.ChatMessage, error) {
	if err := s.authorize(ctx, bookingID, requesterID); err != nil {
		return nil, err
	}
	return s.chatRepo.ListByBooking(ctx, bookingID)
}

func (s *ChatService) authorize(ctx context.Context, bookingID, playerID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.PlayerID == playerID {
		return nil
	}

	member, err := s.rosterRepo.IsMember(ctx, bookingID, playerID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return domain.ErrNotParticipant
	}

	return nil
}
