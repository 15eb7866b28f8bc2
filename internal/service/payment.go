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
	"github.com/wb-go/wbf/retry"
)

const paymentCurrency = "NPR"

// PaymentService drives a payment through
// INITIATED -> {SUCCEEDED, FAILED} -> (SUCCEEDED -> REFUNDED) and keeps the
// success transition atomic with booking confirmation.
type PaymentService struct {
	paymentRepo     ports.PaymentRepo
	reservationRepo ports.ReservationRepo
	playerRepo      ports.PlayerRepo
	groundRepo      ports.GroundRepo
	gateway         ports.PaymentGateway
	notifier        ports.BookingNotifier
	publisher       ports.EventPublisher
	logger          logger.Logger
	gatewayRetry    retry.Strategy
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	reservationRepo ports.ReservationRepo,
	playerRepo ports.PlayerRepo,
	groundRepo ports.GroundRepo,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	log logger.Logger,
	gatewayAttempts int,
	gatewayDelay time.Duration,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		playerRepo:      playerRepo,
		groundRepo:      groundRepo,
		gateway:         gateway,
		notifier:        notifier,
		publisher:       publisher,
		logger:          log,
		gatewayRetry: retry.Strategy{
			Attempts: gatewayAttempts,
			Delay:    gatewayDelay,
			Backoff:  2,
		},
	}
}

// Initiate creates the payment against a live pending reservation and
// charges the gateway with bounded retries. Exhausted retries mark the
// payment FAILED and release the reservation.
func (s *PaymentService) Initiate(ctx context.Context, in domain.InitiatePaymentInput) (*domain.Payment, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, in.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("check reservation: %w", err)
	}

	switch reservation.Status {
	case domain.ReservationPending:
		if reservation.IsExpired(time.Now().UTC()) {
			return nil, domain.ErrReservationExpired
		}
	case domain.ReservationExpired:
		return nil, domain.ErrReservationExpired
	default:
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrValidation, reservation.Status)
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		ReservationID: in.ReservationID,
		Method:        in.Method,
		Amount:        in.Amount,
		Status:        domain.PaymentInitiated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	var ref string
	chargeErr := retry.Do(func() error {
		var err error
		ref, err = s.gateway.Charge(ctx, ports.ChargeInput{
			PaymentID: payment.ID,
			Amount:    in.Amount,
			Currency:  paymentCurrency,
			Method:    in.Method,
			CardToken: in.CardToken,
		})
		return err
	}, s.gatewayRetry)

	if chargeErr != nil {
		s.logger.Error("gateway charge failed, releasing reservation",
			logger.String("payment_id", payment.ID),
			logger.String("error", chargeErr.Error()),
		)
		if err = s.paymentRepo.CompleteFailure(ctx, payment.ID); err != nil {
			return nil, fmt.Errorf("fail payment after charge error: %w", err)
		}
		monitoring.ObservePayment("gateway_failed")
		s.publishOutcome(ctx, payment, nil, domain.PaymentFailed)
		return nil, fmt.Errorf("charge gateway: %w", chargeErr)
	}

	if err = s.paymentRepo.SetGatewayRef(ctx, payment.ID, ref); err != nil {
		return nil, fmt.Errorf("store gateway ref: %w", err)
	}
	payment.GatewayRef = ref

	s.logger.Info("payment initiated",
		logger.String("payment_id", payment.ID),
		logger.String("reservation_id", in.ReservationID),
		logger.String("amount", in.Amount.String()),
	)

	return payment, nil
}

// Complete applies the gateway outcome. Success confirms the reservation and
// materializes the booking in the same transaction as the payment update;
// failure releases the reservation.
func (s *PaymentService) Complete(ctx context.Context, paymentID string, succeeded bool) (*domain.Booking, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if !succeeded {
		if err = s.paymentRepo.CompleteFailure(ctx, paymentID); err != nil {
			return nil, fmt.Errorf("complete failure: %w", err)
		}
		monitoring.ObservePayment("failed")
		s.publishOutcome(ctx, payment, nil, domain.PaymentFailed)
		return nil, nil
	}

	booking, err := s.paymentRepo.CompleteSuccess(ctx, paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationExpired) {
			// The payment was forced FAILED; the gateway charge has to be
			// reversed out of band.
			s.logger.Error("reservation expired mid-payment, charge requires reversal",
				logger.String("payment_id", paymentID),
				logger.String("gateway_ref", payment.GatewayRef),
			)
			monitoring.ObservePayment("expired_mid_payment")
			s.publishOutcome(ctx, payment, nil, domain.PaymentFailed)
		}
		return nil, fmt.Errorf("complete success: %w", err)
	}

	monitoring.ObservePayment("succeeded")
	s.logger.Info("payment succeeded",
		logger.String("payment_id", paymentID),
		logger.String("booking_id", booking.ID),
	)
	s.publishOutcome(ctx, payment, booking, domain.PaymentSucceeded)

	go s.notifyConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Refund is legal only from SUCCEEDED. The refunded booking keeps occupying
// its slot unless cancelled separately.
func (s *PaymentService) Refund(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.Refund(ctx, paymentID); err != nil {
		return fmt.Errorf("refund payment: %w", err)
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("get refunded payment: %w", err)
	}

	monitoring.ObservePayment("refunded")
	s.logger.Info("payment refunded",
		logger.String("payment_id", paymentID),
	)
	s.publishOutcome(ctx, payment, nil, domain.PaymentRefunded)

	return nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *PaymentService) publishOutcome(ctx context.Context, p *domain.Payment, b *domain.Booking, status domain.PaymentStatus) {
	payload := events.PaymentOutcome{
		PaymentID:     p.ID,
		ReservationID: p.ReservationID,
		Status:        string(status),
		Amount:        p.Amount.String(),
	}
	if b != nil {
		payload.BookingID = b.ID
	}

	if err := s.publisher.Publish(ctx, events.RKPaymentOutcome, payload); err != nil {
		s.logger.Error("failed to publish payment outcome",
			logger.String("payment_id", p.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *PaymentService) notifyConfirmed(ctx context.Context, b *domain.Booking) {
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
