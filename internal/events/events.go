package events

// Routing keys for events consumed by the external notification dispatcher.
const (
	RKReservationExpiring = "reservation.expiring"
	RKReservationExpired  = "reservation.expired"
	RKJoinRequestDecided  = "join_request.decided"
	RKPaymentOutcome      = "payment.outcome"
)

type ReservationExpiring struct {
	ReservationID string `json:"reservation_id"`
	GroundID      string `json:"ground_id"`
	PlayerID      string `json:"player_id"`
	ExpiresAt     int64  `json:"expires_at"` // unix seconds
}

type ReservationExpired struct {
	ReservationID string `json:"reservation_id"`
	GroundID      string `json:"ground_id"`
	PlayerID      string `json:"player_id"`
}

type JoinRequestDecided struct {
	RequestID string `json:"request_id"`
	BookingID string `json:"booking_id"`
	PlayerID  string `json:"player_id"`
	Accepted  bool   `json:"accepted"`
}

type PaymentOutcome struct {
	PaymentID     string `json:"payment_id"`
	ReservationID string `json:"reservation_id"`
	BookingID     string `json:"booking_id,omitempty"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
}
