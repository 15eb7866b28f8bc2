package domain

import "time"

// ChatMessage is a message attached to a booking. The core only enforces
// participant membership; delivery is an external concern.
type ChatMessage struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sent_at"`
}
