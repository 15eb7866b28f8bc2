package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/events"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports/mocks"
)

func newRosterService(t *testing.T) (*mocks.MockRosterRepo, *mocks.MockBookingRepo, *mocks.MockGroundRepo, *mocks.MockEventPublisher, *RosterService) {
	t.Helper()
	rosterRepo := mocks.NewMockRosterRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	groundRepo := mocks.NewMockGroundRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := NewRosterService(rosterRepo, bookingRepo, groundRepo, publisher, newTestLogger(t))
	return rosterRepo, bookingRepo, groundRepo, publisher, svc
}

func teamBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "b1",
		GroundID:    "g1",
		PlayerID:    "p1",
		BookingType: domain.BookingTeam,
	}
}

func TestRoster_RequestJoin_Success(t *testing.T) {
	rosterRepo, bookingRepo, _, _, svc := newRosterService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	rosterRepo.EXPECT().IsMember(mock.Anything, "b1", "p2").Return(false, nil)
	rosterRepo.EXPECT().CreateRequest(mock.Anything, mock.Anything).Return(nil)

	request, err := svc.RequestJoin(context.Background(), "b1", "p2", "striker")

	require.NoError(t, err)
	assert.Equal(t, domain.JoinRequestPending, request.Status)
	assert.Equal(t, "b1", request.BookingID)
	assert.Equal(t, "p2", request.PlayerID)
	assert.Equal(t, "striker", request.Position)
}

func TestRoster_RequestJoin_SoloBooking(t *testing.T) {
	_, bookingRepo, _, _, svc := newRosterService(t)

	solo := teamBooking()
	solo.BookingType = domain.BookingSolo

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(solo, nil)

	_, err := svc.RequestJoin(context.Background(), "b1", "p2", "")

	assert.ErrorIs(t, err, domain.ErrBookingNotTeamType)
}

func TestRoster_RequestJoin_BookerIsMember(t *testing.T) {
	_, bookingRepo, _, _, svc := newRosterService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)

	_, err := svc.RequestJoin(context.Background(), "b1", "p1", "")

	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

func TestRoster_RequestJoin_AlreadyMember(t *testing.T) {
	rosterRepo, bookingRepo, _, _, svc := newRosterService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	rosterRepo.EXPECT().IsMember(mock.Anything, "b1", "p2").Return(true, nil)

	_, err := svc.RequestJoin(context.Background(), "b1", "p2", "")

	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

func TestRoster_Decide_Accept(t *testing.T) {
	rosterRepo, bookingRepo, groundRepo, publisher, svc := newRosterService(t)

	now := time.Now().UTC()
	request := &domain.JoinRequest{ID: "req1", BookingID: "b1", PlayerID: "p2", Status: domain.JoinRequestPending}
	decided := &domain.JoinRequest{ID: "req1", BookingID: "b1", PlayerID: "p2", Status: domain.JoinRequestAccepted, DecidedAt: &now}

	rosterRepo.EXPECT().GetRequest(mock.Anything, "req1").Return(request, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Ground{ID: "g1", Size: "7-a-side"}, nil)
	rosterRepo.EXPECT().Decide(mock.Anything, "req1", true, 7).Return(decided, nil)
	publisher.EXPECT().Publish(mock.Anything, events.RKJoinRequestDecided, mock.Anything).Return(nil)

	got, err := svc.Decide(context.Background(), "req1", true)

	require.NoError(t, err)
	assert.Equal(t, domain.JoinRequestAccepted, got.Status)
}

func TestRoster_Decide_CapacityExceeded(t *testing.T) {
	rosterRepo, bookingRepo, groundRepo, _, svc := newRosterService(t)

	request := &domain.JoinRequest{ID: "req1", BookingID: "b1", PlayerID: "p2", Status: domain.JoinRequestPending}

	rosterRepo.EXPECT().GetRequest(mock.Anything, "req1").Return(request, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Ground{ID: "g1", Size: "5-a-side"}, nil)
	rosterRepo.EXPECT().Decide(mock.Anything, "req1", true, 5).Return(nil, domain.ErrCapacityExceeded)

	_, err := svc.Decide(context.Background(), "req1", true)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestRoster_Decide_NotPending(t *testing.T) {
	rosterRepo, bookingRepo, groundRepo, _, svc := newRosterService(t)

	request := &domain.JoinRequest{ID: "req1", BookingID: "b1", PlayerID: "p2", Status: domain.JoinRequestAccepted}

	rosterRepo.EXPECT().GetRequest(mock.Anything, "req1").Return(request, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(teamBooking(), nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Ground{ID: "g1", Size: "5-a-side"}, nil)
	rosterRepo.EXPECT().Decide(mock.Anything, "req1", false, 5).Return(nil, domain.ErrRequestNotPending)

	_, err := svc.Decide(context.Background(), "req1", false)

	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
}
