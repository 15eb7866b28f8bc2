package domain

import "time"

// Loyalty holds per-player counters, mutated only by the loyalty updater
// after a booking's slot has passed with a succeeded payment.
type Loyalty struct {
	PlayerID     string    `json:"player_id"`
	TotalMatches int       `json:"total_matches"`
	Points       int       `json:"points"`
	UpdatedAt    time.Time `json:"updated_at"`
}
