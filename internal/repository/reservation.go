package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, ground_id, player_id, slot_date, start_min, duration_min,
	booking_type, status, created_at, expires_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert claims the slot key. The partial unique index on
// (ground_id, slot_date, start_min) over live rows turns a concurrent claim
// into a 23505, which surfaces as ErrSlotTaken.
func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, ground_id, player_id, slot_date, start_min, duration_min,
				booking_type, status, created_at, expires_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.GroundID, res.PlayerID, res.Date, res.StartMin, res.DurationMin,
		res.BookingType, res.Status, res.CreatedAt, res.ExpiresAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	booking, err := confirmReservationTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm: %w", err)
	}

	return booking, nil
}

// confirmReservationTx performs the PENDING -> CONFIRMED transition and
// materializes the booking inside the caller's transaction. The expiry check
// sits in the UPDATE predicate, so a racing sweep or release loses or wins
// atomically; zero rows affected is diagnosed afterwards.
func confirmReservationTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Booking, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			    AND status = $3
			    AND expires_at > now()
			  RETURNING ground_id, player_id, slot_date, start_min, duration_min, booking_type`

	var b domain.Booking
	err := tx.QueryRowContext(
		ctx, query, id,
		domain.ReservationConfirmed, domain.ReservationPending,
	).Scan(&b.GroundID, &b.PlayerID, &b.Date, &b.StartMin, &b.DurationMin, &b.BookingType)

	if errors.Is(err, sql.ErrNoRows) {
		return diagnoseConfirmMiss(ctx, tx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	b.ID = uuid.New().String()
	b.ReservationID = id
	b.CreatedAt = time.Now().UTC()

	insert := `INSERT INTO bookings (id, reservation_id, ground_id, player_id, slot_date,
				start_min, duration_min, booking_type, loyalty_applied, created_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9)`
	if _, err = tx.ExecContext(
		ctx, insert,
		b.ID, b.ReservationID, b.GroundID, b.PlayerID, b.Date,
		b.StartMin, b.DurationMin, b.BookingType, b.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return &b, nil
}

// diagnoseConfirmMiss distinguishes why the guarded confirm matched nothing:
// missing row, already confirmed (idempotent success), expired, or released.
func diagnoseConfirmMiss(ctx context.Context, tx *sql.Tx, id string) (*domain.Booking, error) {
	var status domain.ReservationStatus
	var expiresAt time.Time
	check := `SELECT status, expires_at FROM reservations WHERE id = $1`
	if err := tx.QueryRowContext(ctx, check, id).Scan(&status, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("check reservation: %w", err)
	}

	switch status {
	case domain.ReservationConfirmed:
		return getBookingByReservationTx(ctx, tx, id)
	case domain.ReservationExpired:
		return nil, domain.ErrReservationExpired
	case domain.ReservationPending:
		if time.Now().After(expiresAt) {
			return nil, domain.ErrReservationExpired
		}
		return nil, domain.ErrReservationNotFound
	default: // cancelled
		return nil, domain.ErrReservationNotFound
	}
}

func getBookingByReservationTx(ctx context.Context, tx *sql.Tx, reservationID string) (*domain.Booking, error) {
	query := `SELECT id, reservation_id, ground_id, player_id, slot_date, start_min,
				duration_min, booking_type, loyalty_applied, created_at
			  FROM bookings
			  WHERE reservation_id = $1`

	var b domain.Booking
	err := tx.QueryRowContext(ctx, query, reservationID).Scan(
		&b.ID, &b.ReservationID, &b.GroundID, &b.PlayerID, &b.Date, &b.StartMin,
		&b.DurationMin, &b.BookingType, &b.LoyaltyApplied, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking by reservation: %w", err)
	}

	return &b, nil
}

// Release cancels a pending reservation. Already-terminal reservations are a
// no-op, which makes release safe to retry and safe to race with the sweep.
func (r *ReservationRepository) Release(ctx context.Context, id string) error {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.ReservationCancelled, domain.ReservationPending,
	)
	if err != nil {
		return fmt.Errorf("release reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, check, id)
		if err != nil {
			return fmt.Errorf("check reservation: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan check: %w", err)
		}
		if !exists {
			return domain.ErrReservationNotFound
		}
	}

	return nil
}

// ExpireOverdue is the sweep: every overdue PENDING reservation flips to
// EXPIRED in one set-based statement, freeing its slot key.
func (r *ReservationRepository) ExpireOverdue(ctx context.Context) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND expires_at < now()
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationPending, domain.ReservationExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListExpiring(ctx context.Context, within time.Duration) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = $1
			    AND expires_at > now()
			    AND expires_at <= now() + make_interval(secs => $2)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.ReservationPending, within.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list expiring: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID, &res.GroundID, &res.PlayerID, &res.Date, &res.StartMin, &res.DurationMin,
		&res.BookingType, &res.Status, &res.CreatedAt, &res.ExpiresAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		result = append(result, res)
	}
	return result, rows.Err()
}
