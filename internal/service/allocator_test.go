package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/events"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// 2026-03-02 is a Monday.
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func testGround() *domain.Ground {
	return &domain.Ground{
		ID:   "g1",
		Name: "Arena One",
		Size: "5-a-side",
		Windows: []domain.AvailabilityWindow{
			{Weekday: time.Monday, OpenMin: 9 * 60, CloseMin: 22 * 60},
		},
	}
}

func newAllocator(t *testing.T) (*mocks.MockGroundRepo, *mocks.MockReservationRepo, *mocks.MockPlayerRepo, *mocks.MockBookingNotifier, *mocks.MockEventPublisher, *AllocatorService) {
	t.Helper()
	groundRepo := mocks.NewMockGroundRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	playerRepo := mocks.NewMockPlayerRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := NewAllocatorService(
		groundRepo, reservationRepo, playerRepo, notifier, publisher,
		newTestLogger(t), 10*time.Minute, 2*time.Minute,
	)
	return groundRepo, reservationRepo, playerRepo, notifier, publisher, svc
}

func TestAllocator_Reserve_Success(t *testing.T) {
	groundRepo, reservationRepo, playerRepo, notifier, _, svc := newAllocator(t)

	player := &domain.Player{ID: "p1", Name: "Asha"}
	ground := testGround()

	playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(ground, nil)
	reservationRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, player, ground, mock.Anything).Return()

	reservation, err := svc.Reserve(context.Background(), domain.ReserveInput{
		GroundID:    "g1",
		PlayerID:    "p1",
		Date:        testDate,
		StartMin:    18 * 60,
		DurationMin: 60,
		BookingType: domain.BookingSolo,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, reservation.Status)
	assert.Equal(t, "g1", reservation.GroundID)
	assert.NotEmpty(t, reservation.ID)
	assert.WithinDuration(t, time.Now().UTC().Add(10*time.Minute), reservation.ExpiresAt, 5*time.Second)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAllocator_Reserve_OutsideWindow(t *testing.T) {
	groundRepo, _, playerRepo, _, _, svc := newAllocator(t)

	playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Player{ID: "p1"}, nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(testGround(), nil)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		GroundID:    "g1",
		PlayerID:    "p1",
		Date:        testDate,
		StartMin:    23 * 60,
		DurationMin: 60,
		BookingType: domain.BookingSolo,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestAllocator_Reserve_SlotTaken(t *testing.T) {
	groundRepo, reservationRepo, playerRepo, _, _, svc := newAllocator(t)

	playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Player{ID: "p1"}, nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(testGround(), nil)
	reservationRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		GroundID:    "g1",
		PlayerID:    "p1",
		Date:        testDate,
		StartMin:    18 * 60,
		DurationMin: 60,
		BookingType: domain.BookingTeam,
	})

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestAllocator_Reserve_InvalidInput(t *testing.T) {
	_, _, _, _, _, svc := newAllocator(t)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		GroundID:    "g1",
		PlayerID:    "p1",
		Date:        testDate,
		StartMin:    18 * 60,
		DurationMin: 0,
		BookingType: domain.BookingSolo,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Reserve(context.Background(), domain.ReserveInput{
		GroundID:    "g1",
		PlayerID:    "p1",
		Date:        testDate,
		StartMin:    18 * 60,
		DurationMin: 60,
		BookingType: "TOURNAMENT",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAllocator_Confirm_Success(t *testing.T) {
	groundRepo, reservationRepo, playerRepo, notifier, _, svc := newAllocator(t)

	booking := &domain.Booking{
		ID:            "b1",
		ReservationID: "r1",
		GroundID:      "g1",
		PlayerID:      "p1",
	}
	player := &domain.Player{ID: "p1"}
	ground := testGround()

	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(booking, nil)
	playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(ground, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, player, ground, booking).Return()

	got, err := svc.Confirm(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAllocator_Confirm_Expired(t *testing.T) {
	_, reservationRepo, _, _, _, svc := newAllocator(t)

	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(nil, domain.ErrReservationExpired)

	_, err := svc.Confirm(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrReservationExpired)
}

func TestAllocator_Release(t *testing.T) {
	_, reservationRepo, _, _, _, svc := newAllocator(t)

	reservationRepo.EXPECT().Release(mock.Anything, "r1").Return(nil)

	require.NoError(t, svc.Release(context.Background(), "r1"))
}

func TestAllocator_SweepExpired(t *testing.T) {
	groundRepo, reservationRepo, playerRepo, notifier, publisher, svc := newAllocator(t)

	expiring := []*domain.Reservation{
		{ID: "r1", GroundID: "g1", PlayerID: "p1", ExpiresAt: time.Now().Add(time.Minute)},
	}
	expired := []*domain.Reservation{
		{ID: "r2", GroundID: "g1", PlayerID: "p2"},
	}
	player := &domain.Player{ID: "p2"}
	ground := testGround()

	reservationRepo.EXPECT().ListExpiring(mock.Anything, 2*time.Minute).Return(expiring, nil)
	publisher.EXPECT().Publish(mock.Anything, events.RKReservationExpiring, mock.Anything).Return(nil)
	reservationRepo.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)
	publisher.EXPECT().Publish(mock.Anything, events.RKReservationExpired, mock.Anything).Return(nil)
	playerRepo.EXPECT().GetByID(mock.Anything, "p2").Return(player, nil)
	groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(ground, nil)
	notifier.EXPECT().NotifyReservationExpired(mock.Anything, player, ground, expired[0]).Return()

	got, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAllocator_SweepExpired_ExpireFails(t *testing.T) {
	_, reservationRepo, _, _, _, svc := newAllocator(t)

	reservationRepo.EXPECT().ListExpiring(mock.Anything, 2*time.Minute).Return(nil, nil)
	reservationRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.SweepExpired(context.Background())

	assert.Error(t, err)
}
