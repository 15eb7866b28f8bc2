package dto

import (
	"time"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
)

type PlayerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Age            int    `json:"age"`
	Gender         string `json:"gender,omitempty"`
	Position       string `json:"position,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ConnectionResponse struct {
	ID        string `json:"id"`
	PlayerID  string `json:"player_id"`
	PeerID    string `json:"peer_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type AvailabilityWindowOut struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

type GroundResponse struct {
	ID        string                  `json:"id"`
	OwnerID   string                  `json:"owner_id"`
	Name      string                  `json:"name"`
	Location  string                  `json:"location,omitempty"`
	Size      string                  `json:"size,omitempty"`
	Capacity  int                     `json:"team_capacity"`
	Windows   []AvailabilityWindowOut `json:"windows"`
	CreatedAt string                  `json:"created_at"`
}

type DocumentResponse struct {
	ID        string `json:"id"`
	GroundID  string `json:"ground_id"`
	Type      string `json:"type,omitempty"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	GroundID    string `json:"ground_id"`
	PlayerID    string `json:"player_id"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	DurationMin int    `json:"duration_min"`
	BookingType string `json:"booking_type"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
	CreatedAt   string `json:"created_at"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	GroundID      string `json:"ground_id"`
	PlayerID      string `json:"player_id"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	DurationMin   int    `json:"duration_min"`
	BookingType   string `json:"booking_type"`
	CreatedAt     string `json:"created_at"`
}

type PaymentResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	BookingID     string `json:"booking_id,omitempty"`
	Method        string `json:"method"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type JoinRequestResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	PlayerID  string `json:"player_id"`
	Position  string `json:"position,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	DecidedAt string `json:"decided_at,omitempty"`
}

type TeamMemberResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	PlayerID  string `json:"player_id"`
	Position  string `json:"position,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	SentAt    string `json:"sent_at"`
}

type LoyaltyResponse struct {
	PlayerID     string `json:"player_id"`
	TotalMatches int    `json:"total_matches"`
	Points       int    `json:"points"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:             p.ID,
		Name:           p.Name,
		Phone:          p.Phone,
		Age:            p.Age,
		Gender:         p.Gender,
		Position:       p.Position,
		TelegramChatID: p.TelegramChatID,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

func ToConnectionResponse(c *domain.PlayerConnection) ConnectionResponse {
	return ConnectionResponse{
		ID:        c.ID,
		PlayerID:  c.PlayerID,
		PeerID:    c.PeerID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToGroundResponse(g *domain.Ground) GroundResponse {
	windows := make([]AvailabilityWindowOut, 0, len(g.Windows))
	for _, w := range g.Windows {
		windows = append(windows, AvailabilityWindowOut{
			Weekday: int(w.Weekday),
			Open:    domain.FormatClock(w.OpenMin),
			Close:   domain.FormatClock(w.CloseMin),
		})
	}

	return GroundResponse{
		ID:        g.ID,
		OwnerID:   g.OwnerID,
		Name:      g.Name,
		Location:  g.Location,
		Size:      g.Size,
		Capacity:  g.TeamCapacity(),
		Windows:   windows,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}

func ToDocumentResponse(d *domain.GroundDocument) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		GroundID:  d.GroundID,
		Type:      d.Type,
		URL:       d.URL,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		GroundID:    r.GroundID,
		PlayerID:    r.PlayerID,
		Date:        r.Date.Format("2006-01-02"),
		Start:       domain.FormatClock(r.StartMin),
		DurationMin: r.DurationMin,
		BookingType: string(r.BookingType),
		Status:      string(r.Status),
		ExpiresAt:   r.ExpiresAt.Format(time.RFC3339),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		GroundID:      b.GroundID,
		PlayerID:      b.PlayerID,
		Date:          b.Date.Format("2006-01-02"),
		Start:         domain.FormatClock(b.StartMin),
		DurationMin:   b.DurationMin,
		BookingType:   string(b.BookingType),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Method:        p.Method,
		Amount:        p.Amount.StringFixed(2),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.BookingID != nil {
		resp.BookingID = *p.BookingID
	}
	return resp
}

func ToJoinRequestResponse(r *domain.JoinRequest) JoinRequestResponse {
	resp := JoinRequestResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		PlayerID:  r.PlayerID,
		Position:  r.Position,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		resp.DecidedAt = r.DecidedAt.Format(time.RFC3339)
	}
	return resp
}

func ToTeamMemberResponse(m *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        m.ID,
		BookingID: m.BookingID,
		PlayerID:  m.PlayerID,
		Position:  m.Position,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func ToChatMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		BookingID: m.BookingID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		SentAt:    m.SentAt.Format(time.RFC3339),
	}
}

func ToLoyaltyResponse(l *domain.Loyalty) LoyaltyResponse {
	return LoyaltyResponse{
		PlayerID:     l.PlayerID,
		TotalMatches: l.TotalMatches,
		Points:       l.Points,
	}
}
