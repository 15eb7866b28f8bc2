package domain

import "time"

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "PENDING"
	JoinRequestAccepted JoinRequestStatus = "ACCEPTED"
	JoinRequestRejected JoinRequestStatus = "REJECTED"
)

type TeamMember struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	PlayerID  string    `json:"player_id"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type JoinRequest struct {
	ID        string            `json:"id"`
	BookingID string            `json:"booking_id"`
	PlayerID  string            `json:"player_id"`
	Position  string            `json:"position"`
	Status    JoinRequestStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	DecidedAt *time.Time        `json:"decided_at,omitempty"`
}
