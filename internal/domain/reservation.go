package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationExpired   ReservationStatus = "EXPIRED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

// Reservation is a tentative, time-bounded claim on a slot. At most one
// reservation per (ground, date, start) may be PENDING or CONFIRMED at a
// time; the ledger enforces that with a partial unique index.
type Reservation struct {
	ID          string            `json:"id"`
	GroundID    string            `json:"ground_id"`
	PlayerID    string            `json:"player_id"`
	Date        time.Time         `json:"date"`
	StartMin    int               `json:"start_min"`
	DurationMin int               `json:"duration_min"`
	BookingType BookingType       `json:"booking_type"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (r *Reservation) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// SlotStart is the absolute start of the reserved slot.
func (r *Reservation) SlotStart() time.Time {
	return r.Date.Add(time.Duration(r.StartMin) * time.Minute)
}

func (r *Reservation) SlotEnd() time.Time {
	return r.Date.Add(time.Duration(r.StartMin+r.DurationMin) * time.Minute)
}

type ReserveInput struct {
	GroundID    string
	PlayerID    string
	Date        time.Time
	StartMin    int
	DurationMin int
	BookingType BookingType
}
