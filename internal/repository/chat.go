package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ChatRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewChatRepo(db *dbpg.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ChatRepository) Insert(ctx context.Context, m *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, booking_id, sender_id, message_text, sent_at)
			  VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.BookingID, m.SenderID, m.Text, m.SentAt,
	); err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}

	return nil
}

func (r *ChatRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.ChatMessage, error) {
	query := `SELECT id, booking_id, sender_id, message_text, sent_at
			  FROM chat_messages
			  WHERE booking_id = $1
			  ORDER BY sent_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var res []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err = rows.Scan(&m.ID, &m.BookingID, &m.SenderID, &m.Text, &m.SentAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
