package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LoyaltyRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLoyaltyRepo(db *dbpg.DB) *LoyaltyRepository {
	return &LoyaltyRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Apply claims the booking's processed marker and credits the booker and
// every team member in one transaction. The marker UPDATE carries the
// eligibility predicate, so a retry or a concurrent apply sees zero rows and
// returns applied=false without touching the counters.
func (r *LoyaltyRepository) Apply(ctx context.Context, bookingID string, points int) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	claim := `UPDATE bookings b
			  SET loyalty_applied = true
			  WHERE b.id = $1
			    AND b.loyalty_applied = false
			    AND b.slot_date + make_interval(mins => b.start_min + b.duration_min) < now()
			    AND EXISTS (
			      SELECT 1 FROM payments p
			      WHERE p.booking_id = b.id AND p.status = $2
			    )`

	res, err := tx.ExecContext(ctx, claim, bookingID, domain.PaymentSucceeded)
	if err != nil {
		return false, fmt.Errorf("claim booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, check, bookingID).Scan(&exists); err != nil {
			return false, fmt.Errorf("check booking: %w", err)
		}
		if !exists {
			return false, domain.ErrBookingNotFound
		}
		return false, nil
	}

	credit := `INSERT INTO loyalty (player_id, total_matches, points, updated_at)
			   SELECT p.player_id, 1, $2, now()
			   FROM (
			     SELECT player_id FROM bookings WHERE id = $1
			     UNION
			     SELECT player_id FROM team_members WHERE booking_id = $1
			   ) p
			   ON CONFLICT (player_id) DO UPDATE
			   SET total_matches = loyalty.total_matches + 1,
			       points = loyalty.points + EXCLUDED.points,
			       updated_at = now()`

	if _, err = tx.ExecContext(ctx, credit, bookingID, points); err != nil {
		return false, fmt.Errorf("credit loyalty: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit loyalty: %w", err)
	}

	return true, nil
}

func (r *LoyaltyRepository) ListDue(ctx context.Context) ([]string, error) {
	query := `SELECT b.id
			  FROM bookings b
			  JOIN payments p ON p.booking_id = b.id
			  WHERE b.loyalty_applied = false
			    AND p.status = $1
			    AND b.slot_date + make_interval(mins => b.start_min + b.duration_min) < now()
			  LIMIT 100`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.PaymentSucceeded)
	if err != nil {
		return nil, fmt.Errorf("list due bookings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan booking id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *LoyaltyRepository) GetByPlayer(ctx context.Context, playerID string) (*domain.Loyalty, error) {
	query := `SELECT player_id, total_matches, points, updated_at
			  FROM loyalty
			  WHERE player_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("get loyalty: %w", err)
	}

	var l domain.Loyalty
	if err = row.Scan(&l.PlayerID, &l.TotalMatches, &l.Points, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.Loyalty{PlayerID: playerID}, nil
		}
		return nil, fmt.Errorf("scan loyalty: %w", err)
	}

	return &l, nil
}
