package dto

type CreatePlayerRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Age            int    `json:"age" binding:"required,gt=0"`
	Gender         string `json:"gender"`
	Position       string `json:"position"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type ConnectRequest struct {
	PeerID string `json:"peer_id" binding:"required,uuid"`
}

type CreateGroundRequest struct {
	OwnerID  string                 `json:"owner_id" binding:"required"`
	Name     string                 `json:"name" binding:"required"`
	Location string                 `json:"location"`
	Size     string                 `json:"size"`
	Windows  []AvailabilityWindowIn `json:"windows" binding:"required,min=1"`
}

type AvailabilityWindowIn struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Open    string `json:"open" binding:"required"`
	Close   string `json:"close" binding:"required"`
}

type AddDocumentRequest struct {
	Type string `json:"type"`
	URL  string `json:"url" binding:"required"`
}

type ReserveRequest struct {
	PlayerID    string `json:"player_id" binding:"required,uuid"`
	Date        string `json:"date" binding:"required"`
	Start       string `json:"start" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
	BookingType string `json:"booking_type" binding:"required,oneof=SOLO TEAM"`
}

type PayRequest struct {
	Method    string `json:"method" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	CardToken string `json:"card_token"`
}

// PaymentWebhookRequest is the gateway callback body. Status carries the
// gateway's terminal charge state.
type PaymentWebhookRequest struct {
	PaymentID string `json:"payment_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=successful failed"`
}

type JoinRequest struct {
	PlayerID string `json:"player_id" binding:"required,uuid"`
	Position string `json:"position"`
}

type DecideRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

type PostMessageRequest struct {
	SenderID string `json:"sender_id" binding:"required,uuid"`
	Text     string `json:"text" binding:"required"`
}
