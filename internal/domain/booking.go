package domain

import "time"

type BookingType string

const (
	BookingSolo BookingType = "SOLO"
	BookingTeam BookingType = "TEAM"
)

// Booking is a confirmed occupancy of a slot, created only when its
// reservation transitions PENDING -> CONFIRMED. Identity and slot fields are
// immutable after creation.
type Booking struct {
	ID             string      `json:"id"`
	ReservationID  string      `json:"reservation_id"`
	GroundID       string      `json:"ground_id"`
	PlayerID       string      `json:"player_id"`
	Date           time.Time   `json:"date"`
	StartMin       int         `json:"start_min"`
	DurationMin    int         `json:"duration_min"`
	BookingType    BookingType `json:"booking_type"`
	LoyaltyApplied bool        `json:"loyalty_applied"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (b *Booking) SlotEnd() time.Time {
	return b.Date.Add(time.Duration(b.StartMin+b.DurationMin) * time.Minute)
}
