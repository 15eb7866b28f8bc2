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

type PlayerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPlayerRepo(db *dbpg.DB) *PlayerRepository {
	return &PlayerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PlayerRepository) Create(ctx context.Context, p *domain.Player) error {
	query := `INSERT INTO players (id, name, phone, age, gender, position, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.Phone, p.Age, p.Gender, p.Position, p.TelegramChatID, p.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPhoneTaken
		}
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT id, name, phone, age, gender, position, telegram_chat_id, created_at
			  FROM players
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}

	var p domain.Player
	if err = row.Scan(
		&p.ID, &p.Name, &p.Phone, &p.Age, &p.Gender, &p.Position, &p.TelegramChatID, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}

	return &p, nil
}

func (r *PlayerRepository) Connect(ctx context.Context, c *domain.PlayerConnection) error {
	query := `INSERT INTO player_connections (id, player_id, peer_id, status, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.PlayerID, c.PeerID, c.Status, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateConnection
		}
		return fmt.Errorf("insert connection: %w", err)
	}

	return nil
}

func (r *PlayerRepository) ListConnections(ctx context.Context, playerID string) ([]*domain.PlayerConnection, error) {
	query := `SELECT id, player_id, peer_id, status, created_at
			  FROM player_connections
			  WHERE player_id = $1 OR peer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	defer rows.Close()

	var res []*domain.PlayerConnection
	for rows.Next() {
		var c domain.PlayerConnection
		if err = rows.Scan(&c.ID, &c.PlayerID, &c.PeerID, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
