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

type GroundRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGroundRepo(db *dbpg.DB) *GroundRepository {
	return &GroundRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GroundRepository) Create(ctx context.Context, g *domain.Ground) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO grounds (id, owner_id, name, location, size, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, query,
		g.ID, g.OwnerID, g.Name, g.Location, g.Size, g.CreatedAt, g.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert ground: %w", err)
	}

	windowQuery := `INSERT INTO ground_windows (ground_id, weekday, open_min, close_min)
					VALUES ($1, $2, $3, $4)`
	stmt, err := tx.PrepareContext(ctx, windowQuery)
	if err != nil {
		return fmt.Errorf("prepare window statement: %w", err)
	}
	defer stmt.Close()

	for _, w := range g.Windows {
		if _, err = stmt.ExecContext(ctx, g.ID, int(w.Weekday), w.OpenMin, w.CloseMin); err != nil {
			return fmt.Errorf("insert window: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit ground: %w", err)
	}

	return nil
}

func (r *GroundRepository) GetByID(ctx context.Context, id string) (*domain.Ground, error) {
	query := `SELECT id, owner_id, name, location, size, created_at, updated_at
			  FROM grounds
			  WHERE id = $1 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ground: %w", err)
	}

	var g domain.Ground
	if err = row.Scan(&g.ID, &g.OwnerID, &g.Name, &g.Location, &g.Size, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroundNotFound
		}
		return nil, fmt.Errorf("scan ground: %w", err)
	}

	windows, err := r.windowsFor(ctx, []string{g.ID})
	if err != nil {
		return nil, err
	}
	g.Windows = windows[g.ID]

	return &g, nil
}

func (r *GroundRepository) List(ctx context.Context) ([]*domain.Ground, error) {
	query := `SELECT id, owner_id, name, location, size, created_at, updated_at
			  FROM grounds
			  WHERE deleted_at IS NULL
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list grounds: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ground
	var ids []string
	for rows.Next() {
		var g domain.Ground
		if err = rows.Scan(&g.ID, &g.OwnerID, &g.Name, &g.Location, &g.Size, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ground: %w", err)
		}
		res = append(res, &g)
		ids = append(ids, g.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		windows, err := r.windowsFor(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, g := range res {
			g.Windows = windows[g.ID]
		}
	}

	return res, nil
}

func (r *GroundRepository) windowsFor(ctx context.Context, groundIDs []string) (map[string][]domain.AvailabilityWindow, error) {
	query := `SELECT ground_id, weekday, open_min, close_min
			  FROM ground_windows
			  WHERE ground_id = ANY($1)
			  ORDER BY weekday, open_min`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(groundIDs))
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.AvailabilityWindow)
	for rows.Next() {
		var groundID string
		var weekday int
		var w domain.AvailabilityWindow
		if err = rows.Scan(&groundID, &weekday, &w.OpenMin, &w.CloseMin); err != nil {
			return nil, fmt.Errorf("scan window: %w", err)
		}
		w.Weekday = time.Weekday(weekday)
		result[groundID] = append(result[groundID], w)
	}

	return result, rows.Err()
}

// SoftDelete hides the ground from new reservations. Historical bookings and
// payments are intentionally preserved.
func (r *GroundRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE grounds SET deleted_at = now(), updated_at = now()
			  WHERE id = $1 AND deleted_at IS NULL`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete ground: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrGroundNotFound
	}

	return nil
}

func (r *GroundRepository) AddDocument(ctx context.Context, d *domain.GroundDocument) error {
	query := `INSERT INTO ground_documents (id, ground_id, doc_type, url, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		d.ID, d.GroundID, d.Type, d.URL, d.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	return nil
}

func (r *GroundRepository) ListDocuments(ctx context.Context, groundID string) ([]*domain.GroundDocument, error) {
	query := `SELECT id, ground_id, doc_type, url, created_at
			  FROM ground_documents
			  WHERE ground_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, groundID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var res []*domain.GroundDocument
	for rows.Next() {
		var d domain.GroundDocument
		if err = rows.Scan(&d.ID, &d.GroundID, &d.Type, &d.URL, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}
