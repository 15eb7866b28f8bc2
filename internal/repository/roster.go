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

type RosterRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRosterRepo(db *dbpg.DB) *RosterRepository {
	return &RosterRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RosterRepository) CreateRequest(ctx context.Context, req *domain.JoinRequest) error {
	query := `INSERT INTO join_requests (id, booking_id, player_id, position, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		req.ID, req.BookingID, req.PlayerID, req.Position, req.Status, req.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert join request: %w", err)
	}

	return nil
}

func (r *RosterRepository) GetRequest(ctx context.Context, id string) (*domain.JoinRequest, error) {
	query := `SELECT id, booking_id, player_id, position, status, created_at, decided_at
			  FROM join_requests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get join request: %w", err)
	}

	var req domain.JoinRequest
	if err = row.Scan(
		&req.ID, &req.BookingID, &req.PlayerID, &req.Position,
		&req.Status, &req.CreatedAt, &req.DecidedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan join request: %w", err)
	}

	return &req, nil
}

// Decide resolves a pending request. The booking row is locked first so
// concurrent accepts on the same roster serialize; the capacity check and
// the member insert then happen under that lock. A capacity miss leaves the
// request PENDING for manual resolution.
func (r *RosterRepository) Decide(ctx context.Context, requestID string, accept bool, capacity int) (*domain.JoinRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var req domain.JoinRequest
	lock := `SELECT id, booking_id, player_id, position, status, created_at
			 FROM join_requests
			 WHERE id = $1
			 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lock, requestID).Scan(
		&req.ID, &req.BookingID, &req.PlayerID, &req.Position, &req.Status, &req.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("lock join request: %w", err)
	}

	if req.Status != domain.JoinRequestPending {
		return nil, domain.ErrRequestNotPending
	}

	if accept {
		var bookingID string
		if err = tx.QueryRowContext(
			ctx, `SELECT id FROM bookings WHERE id = $1 FOR UPDATE`, req.BookingID,
		).Scan(&bookingID); err != nil {
			return nil, fmt.Errorf("lock booking: %w", err)
		}

		var members int
		if err = tx.QueryRowContext(
			ctx, `SELECT COUNT(*) FROM team_members WHERE booking_id = $1`, req.BookingID,
		).Scan(&members); err != nil {
			return nil, fmt.Errorf("count members: %w", err)
		}
		if members >= capacity {
			return nil, domain.ErrCapacityExceeded
		}

		insert := `INSERT INTO team_members (id, booking_id, player_id, position, created_at)
				   VALUES ($1, $2, $3, $4, $5)`
		if _, err = tx.ExecContext(
			ctx, insert,
			uuid.New().String(), req.BookingID, req.PlayerID, req.Position, time.Now().UTC(),
		); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, domain.ErrAlreadyMember
			}
			return nil, fmt.Errorf("insert team member: %w", err)
		}
	}

	status := domain.JoinRequestRejected
	if accept {
		status = domain.JoinRequestAccepted
	}

	now := time.Now().UTC()
	update := `UPDATE join_requests SET status = $2, decided_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, requestID, status, now); err != nil {
		return nil, fmt.Errorf("update join request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit decision: %w", err)
	}

	req.Status = status
	req.DecidedAt = &now
	return &req, nil
}

func (r *RosterRepository) ListMembers(ctx context.Context, bookingID string) ([]*domain.TeamMember, error) {
	query := `SELECT id, booking_id, player_id, position, created_at
			  FROM team_members
			  WHERE booking_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err = rows.Scan(&m.ID, &m.BookingID, &m.PlayerID, &m.Position, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}

func (r *RosterRepository) IsMember(ctx context.Context, bookingID, playerID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM team_members WHERE booking_id = $1 AND player_id = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, playerID)
	if err != nil {
		return false, fmt.Errorf("check member: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan check: %w", err)
	}

	return exists, nil
}
