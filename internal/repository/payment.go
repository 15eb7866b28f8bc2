package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, reservation_id, method, amount, gateway_ref, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.ReservationID, p.Method, p.Amount, p.GatewayRef, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPaymentExists
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT id, reservation_id, booking_id, method, amount, gateway_ref, status, created_at, updated_at
			  FROM payments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = row.Scan(
		&p.ID, &p.ReservationID, &p.BookingID, &p.Method, &p.Amount,
		&p.GatewayRef, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}

func (r *PaymentRepository) SetGatewayRef(ctx context.Context, id, ref string) error {
	query := `UPDATE payments SET gateway_ref = $2, updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ref); err != nil {
		return fmt.Errorf("set gateway ref: %w", err)
	}
	return nil
}

// CompleteSuccess is the single atomic unit of §payment success: the
// reservation confirm, the booking insert and the payment transition commit
// or roll back together. A reservation that expired mid-payment forces the
// payment to FAILED in the same transaction; the external charge must then
// be reversed by the caller.
func (r *PaymentRepository) CompleteSuccess(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reservationID, status, err := lockPaymentTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.PaymentInitiated:
	case domain.PaymentSucceeded:
		// Gateway webhooks retry; completing twice returns the same booking.
		booking, err := getBookingByReservationTx(ctx, tx, reservationID)
		if err != nil {
			return nil, err
		}
		return booking, tx.Commit()
	default:
		return nil, fmt.Errorf("%w: payment is %s, not initiated", domain.ErrValidation, status)
	}

	booking, err := confirmReservationTx(ctx, tx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationExpired) || errors.Is(err, domain.ErrReservationNotFound) {
			if ferr := setPaymentStatusTx(ctx, tx, id, domain.PaymentFailed); ferr != nil {
				return nil, ferr
			}
			if cerr := tx.Commit(); cerr != nil {
				return nil, fmt.Errorf("commit forced failure: %w", cerr)
			}
		}
		return nil, err
	}

	update := `UPDATE payments SET status = $2, booking_id = $3, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, id, domain.PaymentSucceeded, booking.ID); err != nil {
		return nil, fmt.Errorf("mark payment succeeded: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment success: %w", err)
	}

	return booking, nil
}

// CompleteFailure marks the payment FAILED and releases its reservation in
// one transaction. Terminal payments are a no-op.
func (r *PaymentRepository) CompleteFailure(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reservationID, status, err := lockPaymentTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if status != domain.PaymentInitiated {
		return tx.Commit()
	}

	if err = setPaymentStatusTx(ctx, tx, id, domain.PaymentFailed); err != nil {
		return err
	}

	release := `UPDATE reservations SET status = $2, updated_at = now()
				WHERE id = $1 AND status = $3`
	if _, err = tx.ExecContext(
		ctx, release,
		reservationID, domain.ReservationCancelled, domain.ReservationPending,
	); err != nil {
		return fmt.Errorf("release reservation: %w", err)
	}

	return tx.Commit()
}

// Refund is legal only from SUCCEEDED and leaves the booking's slot
// occupancy untouched.
func (r *PaymentRepository) Refund(ctx context.Context, id string) error {
	query := `UPDATE payments SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.PaymentRefunded, domain.PaymentSucceeded,
	)
	if err != nil {
		return fmt.Errorf("refund payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("refund rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrNotSucceeded
	}

	return nil
}

func lockPaymentTx(ctx context.Context, tx *sql.Tx, id string) (string, domain.PaymentStatus, error) {
	var reservationID string
	var status domain.PaymentStatus
	query := `SELECT reservation_id, status FROM payments WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, id).Scan(&reservationID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", domain.ErrPaymentNotFound
		}
		return "", "", fmt.Errorf("lock payment: %w", err)
	}
	return reservationID, status, nil
}

func setPaymentStatusTx(ctx context.Context, tx *sql.Tx, id string, status domain.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = now() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	return nil
}
