package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/events"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports/mocks"
)

type paymentMocks struct {
	paymentRepo     *mocks.MockPaymentRepo
	reservationRepo *mocks.MockReservationRepo
	playerRepo      *mocks.MockPlayerRepo
	groundRepo      *mocks.MockGroundRepo
	gateway         *mocks.MockPaymentGateway
	notifier        *mocks.MockBookingNotifier
	publisher       *mocks.MockEventPublisher
}

func newPaymentService(t *testing.T) (paymentMocks, *PaymentService) {
	t.Helper()
	m := paymentMocks{
		paymentRepo:     mocks.NewMockPaymentRepo(t),
		reservationRepo: mocks.NewMockReservationRepo(t),
		playerRepo:      mocks.NewMockPlayerRepo(t),
		groundRepo:      mocks.NewMockGroundRepo(t),
		gateway:         mocks.NewMockPaymentGateway(t),
		notifier:        mocks.NewMockBookingNotifier(t),
		publisher:       mocks.NewMockEventPublisher(t),
	}

	svc := NewPaymentService(
		m.paymentRepo, m.reservationRepo, m.playerRepo, m.groundRepo,
		m.gateway, m.notifier, m.publisher,
		newTestLogger(t), 1, time.Millisecond,
	)
	return m, svc
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        "r1",
		GroundID:  "g1",
		PlayerID:  "p1",
		Status:    domain.ReservationPending,
		ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
	}
}

func TestPayment_Initiate_Success(t *testing.T) {
	m, svc := newPaymentService(t)

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pendingReservation(), nil)
	m.paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return("ch_123", nil)
	m.paymentRepo.EXPECT().SetGatewayRef(mock.Anything, mock.Anything, "ch_123").Return(nil)

	payment, err := svc.Initiate(context.Background(), domain.InitiatePaymentInput{
		ReservationID: "r1",
		Method:        "card",
		Amount:        decimal.NewFromInt(1500),
		CardToken:     "tok_1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentInitiated, payment.Status)
	assert.Equal(t, "ch_123", payment.GatewayRef)
	assert.Equal(t, "r1", payment.ReservationID)
}

func TestPayment_Initiate_GatewayExhausted(t *testing.T) {
	m, svc := newPaymentService(t)

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pendingReservation(), nil)
	m.paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return("", errors.New("gateway timeout"))
	m.paymentRepo.EXPECT().CompleteFailure(mock.Anything, mock.Anything).Return(nil)
	m.publisher.EXPECT().Publish(mock.Anything, events.RKPaymentOutcome, mock.Anything).Return(nil)

	_, err := svc.Initiate(context.Background(), domain.InitiatePaymentInput{
		ReservationID: "r1",
		Method:        "card",
		Amount:        decimal.NewFromInt(1500),
		CardToken:     "tok_1",
	})

	assert.Error(t, err)
}

func TestPayment_Initiate_ReservationExpired(t *testing.T) {
	m, svc := newPaymentService(t)

	stale := pendingReservation()
	stale.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(stale, nil)

	_, err := svc.Initiate(context.Background(), domain.InitiatePaymentInput{
		ReservationID: "r1",
		Method:        "card",
		Amount:        decimal.NewFromInt(1500),
	})

	assert.ErrorIs(t, err, domain.ErrReservationExpired)
}

func TestPayment_Initiate_NonPositiveAmount(t *testing.T) {
	_, svc := newPaymentService(t)

	_, err := svc.Initiate(context.Background(), domain.InitiatePaymentInput{
		ReservationID: "r1",
		Method:        "card",
		Amount:        decimal.Zero,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPayment_Complete_Success(t *testing.T) {
	m, svc := newPaymentService(t)

	payment := &domain.Payment{
		ID:            "pay1",
		ReservationID: "r1",
		Amount:        decimal.NewFromInt(1500),
		Status:        domain.PaymentInitiated,
	}
	booking := &domain.Booking{ID: "b1", ReservationID: "r1", GroundID: "g1", PlayerID: "p1"}
	player := &domain.Player{ID: "p1"}
	ground := &domain.Ground{ID: "g1", Name: "Arena One"}

	m.paymentRepo.EXPECT().GetByID(mock.Anything, "pay1").Return(payment, nil)
	m.paymentRepo.EXPECT().CompleteSuccess(mock.Anything, "pay1").Return(booking, nil)
	m.publisher.EXPECT().Publish(mock.Anything, events.RKPaymentOutcome, mock.Anything).Return(nil)
	m.playerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(player, nil)
	m.groundRepo.EXPECT().GetByID(mock.Anything, "g1").Return(ground, nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, player, ground, booking).Return()

	got, err := svc.Complete(context.Background(), "pay1", true)

	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPayment_Complete_Failure(t *testing.T) {
	m, svc := newPaymentService(t)

	payment := &domain.Payment{ID: "pay1", ReservationID: "r1", Amount: decimal.NewFromInt(1500)}

	m.paymentRepo.EXPECT().GetByID(mock.Anything, "pay1").Return(payment, nil)
	m.paymentRepo.EXPECT().CompleteFailure(mock.Anything, "pay1").Return(nil)
	m.publisher.EXPECT().Publish(mock.Anything, events.RKPaymentOutcome, mock.Anything).Return(nil)

	booking, err := svc.Complete(context.Background(), "pay1", false)

	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestPayment_Complete_ExpiredMidPayment(t *testing.T) {
	m, svc := newPaymentService(t)

	payment := &domain.Payment{
		ID:            "pay1",
		ReservationID: "r1",
		Amount:        decimal.NewFromInt(1500),
		GatewayRef:    "ch_123",
	}

	m.paymentRepo.EXPECT().GetByID(mock.Anything, "pay1").Return(payment, nil)
	m.paymentRepo.EXPECT().CompleteSuccess(mock.Anything, "pay1").Return(nil, domain.ErrReservationExpired)
	m.publisher.EXPECT().Publish(mock.Anything, events.RKPaymentOutcome, mock.Anything).Return(nil)

	_, err := svc.Complete(context.Background(), "pay1", true)

	assert.ErrorIs(t, err, domain.ErrReservationExpired)
}

func TestPayment_Refund_Success(t *testing.T) {
	m, svc := newPaymentService(t)

	refunded := &domain.Payment{
		ID:            "pay1",
		ReservationID: "r1",
		Amount:        decimal.NewFromInt(1500),
		Status:        domain.PaymentRefunded,
	}

	m.paymentRepo.EXPECT().Refund(mock.Anything, "pay1").Return(nil)
	m.paymentRepo.EXPECT().GetByID(mock.Anything, "pay1").Return(refunded, nil)
	m.publisher.EXPECT().Publish(mock.Anything, events.RKPaymentOutcome, mock.Anything).Return(nil)

	require.NoError(t, svc.Refund(context.Background(), "pay1"))
}

func TestPayment_Refund_NotSucceeded(t *testing.T) {
	m, svc := newPaymentService(t)

	m.paymentRepo.EXPECT().Refund(mock.Anything, "pay1").Return(domain.ErrNotSucceeded)

	err := svc.Refund(context.Background(), "pay1")

	assert.ErrorIs(t, err, domain.ErrNotSucceeded)
}
