package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports/mocks"
)

func newChatService(t *testing.T) (*mocks.MockChatRepo, *mocks.MockBookingRepo, *mocks.MockRosterRepo, *ChatService) {
	t.Helper()
	chatRepo := mocks.NewMockChatRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	rosterRepo := mocks.NewMockRosterRepo(t)
	return chatRepo, bookingRepo, rosterRepo, NewChatService(chatRepo, bookingRepo, rosterRepo)
}

func TestChat_Post_ByBooker(t *testing.T) {
	chatRepo, bookingRepo, _, svc := newChatService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	chatRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	msg, err := svc.Post(context.Background(), "b1", "p1", "see you at six")

	require.NoError(t, err)
	assert.Equal(t, "b1", msg.BookingID)
	assert.Equal(t, "p1", msg.SenderID)
	assert.NotEmpty(t, msg.ID)
}

func TestChat_Post_ByTeamMember(t *testing.T) {
	chatRepo, bookingRepo, rosterRepo, svc := newChatService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	rosterRepo.EXPECT().IsMember(mock.Anything, "b1", "p2").Return(true, nil)
	chatRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Post(context.Background(), "b1", "p2", "on my way")

	require.NoError(t, err)
}

func TestChat_Post_NotParticipant(t *testing.T) {
	_, bookingRepo, rosterRepo, svc := newChatService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	rosterRepo.EXPECT().IsMember(mock.Anything, "b1", "p9").Return(false, nil)

	_, err := svc.Post(context.Background(), "b1", "p9", "let me in")

	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}

func TestChat_Post_EmptyText(t *testing.T) {
	_, _, _, svc := newChatService(t)

	_, err := svc.Post(context.Background(), "b1", "p1", "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChat_List_RequiresParticipant(t *testing.T) {
	chatRepo, bookingRepo, rosterRepo, svc := newChatService(t)

	messages := []*domain.ChatMessage{
		{ID: "m1", BookingID: "b1", SenderID: "p1", Text: "first"},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	rosterRepo.EXPECT().IsMember(mock.Anything, "b1", "p2").Return(true, nil)
	chatRepo.EXPECT().ListByBooking(mock.Anything, "b1").Return(messages, nil)

	got, err := svc.List(context.Background(), "b1", "p2")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
