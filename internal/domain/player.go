package domain

import "time"

type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Position       string    `json:"position"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreatePlayerInput struct {
	Name           string
	Phone          string
	Age            int
	Gender         string
	Position       string
	TelegramChatID *int64
}

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "PENDING"
	ConnectionAccepted ConnectionStatus = "ACCEPTED"
)

// PlayerConnection is a symmetric social edge between two players. Rows are
// stored with PlayerID < PeerID so the pair is unique regardless of who
// initiated.
type PlayerConnection struct {
	ID        string           `json:"id"`
	PlayerID  string           `json:"player_id"`
	PeerID    string           `json:"peer_id"`
	Status    ConnectionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}
