package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type PlayerSvc interface {
	Create(ctx context.Context, input domain.CreatePlayerInput) (*domain.Player, error)
	Get(ctx context.Context, id string) (*domain.Player, error)
	Connect(ctx context.Context, playerID, peerID string) (*domain.PlayerConnection, error)
	Connections(ctx context.Context, playerID string) ([]*domain.PlayerConnection, error)
}

type GroundSvc interface {
	Create(ctx context.Context, input domain.CreateGroundInput) (*domain.Ground, error)
	Get(ctx context.Context, id string) (*domain.Ground, error)
	List(ctx context.Context) ([]*domain.Ground, error)
	Delete(ctx context.Context, id string) error
	AddDocument(ctx context.Context, groundID, docType, url string) (*domain.GroundDocument, error)
	Documents(ctx context.Context, groundID string) ([]*domain.GroundDocument, error)
}

type AllocatorSvc interface {
	Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Reservation, error)
	Release(ctx context.Context, reservationID string) error
	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
}

type PaymentSvc interface {
	Initiate(ctx context.Context, input domain.InitiatePaymentInput) (*domain.Payment, error)
	Complete(ctx context.Context, paymentID string, succeeded bool) (*domain.Booking, error)
	Refund(ctx context.Context, paymentID string) error
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
}

type BookingSvc interface {
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByPlayer(ctx context.Context, playerID string) ([]*domain.Booking, error)
}

type RosterSvc interface {
	RequestJoin(ctx context.Context, bookingID, playerID, position string) (*domain.JoinRequest, error)
	Decide(ctx context.Context, requestID string, accept bool) (*domain.JoinRequest, error)
	Members(ctx context.Context, bookingID string) ([]*domain.TeamMember, error)
}

type ChatSvc interface {
	Post(ctx context.Context, bookingID, senderID, text string) (*domain.ChatMessage, error)
	List(ctx context.Context, bookingID, requesterID string) ([]*domain.ChatMessage, error)
}

type LoyaltySvc interface {
	ByPlayer(ctx context.Context, playerID string) (*domain.Loyalty, error)
}

type Handler struct {
	playerService  PlayerSvc
	groundService  GroundSvc
	allocator      AllocatorSvc
	paymentService PaymentSvc
	bookingService BookingSvc
	rosterService  RosterSvc
	chatService    ChatSvc
	loyaltyService LoyaltySvc
}

func NewHandler(
	playerService PlayerSvc,
	groundService GroundSvc,
	allocator AllocatorSvc,
	paymentService PaymentSvc,
	bookingService BookingSvc,
	rosterService RosterSvc,
	chatService ChatSvc,
	loyaltyService LoyaltySvc,
) *Handler {
	return &Handler{
		playerService:  playerService,
		groundService:  groundService,
		allocator:      allocator,
		paymentService: paymentService,
		bookingService: bookingService,
		rosterService:  rosterService,
		chatService:    chatService,
		loyaltyService: loyaltyService,
	}
}

// Players

func (h *Handler) CreatePlayer(c *ginext.Context) {
	var req dto.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreatePlayerInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Age:            req.Age,
		Gender:         req.Gender,
		Position:       req.Position,
		TelegramChatID: req.TelegramChatID,
	}

	player, err := h.playerService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlayerResponse(player))
}

func (h *Handler) GetPlayer(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid player id"})
		return
	}

	player, err := h.playerService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

func (h *Handler) ConnectPlayer(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid player id"})
		return
	}

	var req dto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := h.playerService.Connect(c.Request.Context(), id, req.PeerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConnectionResponse(conn))
}

func (h *Handler) ListConnections(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid player id"})
		return
	}

	conns, err := h.playerService.Connections(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ConnectionResponse, 0, len(conns))
	for _, conn := range conns {
		resp = append(resp, dto.ToConnectionResponse(conn))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetPlayerBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid player id"})
		return
	}

	bookings, err := h.bookingService.ListByPlayer(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetPlayerLoyalty(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid player id"})
		return
	}

	loyalty, err := h.loyaltyService.ByPlayer(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoyaltyResponse(loyalty))
}

// Grounds

func (h *Handler) CreateGround(c *ginext.Context) {
	var req dto.CreateGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	windows := make([]domain.AvailabilityWindow, 0, len(req.Windows))
	for _, w := range req.Windows {
		openMin, err := domain.ParseClock(w.Open)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		closeMin, err := domain.ParseClock(w.Close)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		windows = append(windows, domain.AvailabilityWindow{
			Weekday:  time.Weekday(w.Weekday),
			OpenMin:  openMin,
			CloseMin: closeMin,
		})
	}

	input := domain.CreateGroundInput{
		OwnerID:  req.OwnerID,
		Name:     req.Name,
		Location: req.Location,
		Size:     req.Size,
		Windows:  windows,
	}

	ground, err := h.groundService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroundResponse(ground))
}

func (h *Handler) GetGround(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ground id"})
		return
	}

	ground, err := h.groundService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGroundResponse(ground))
}

func (h *Handler) ListGrounds(c *ginext.Context) {
	grounds, err := h.groundService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GroundResponse, 0, len(grounds))
	for _, g := range grounds {
		resp = append(resp, dto.ToGroundResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteGround(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ground id"})
		return
	}

	if err := h.groundService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) AddGroundDocument(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ground id"})
		return
	}

	var req dto.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := h.groundService.AddDocument(c.Request.Context(), id, req.Type, req.URL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

func (h *Handler) ListGroundDocuments(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ground id"})
		return
	}

	docs, err := h.groundService.Documents(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, dto.ToDocumentResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) ReserveSlot(c *ginext.Context) {
	groundID := c.Param("id")
	if _, err := uuid.Parse(groundID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ground id"})
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	startMin, err := domain.ParseClock(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.ReserveInput{
		GroundID:    groundID,
		PlayerID:    req.PlayerID,
		Date:        date,
		StartMin:    startMin,
		DurationMin: req.DurationMin,
		BookingType: domain.BookingType(req.BookingType),
	}

	reservation, err := h.allocator.Reserve(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := h.allocator.GetReservation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ReleaseReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.allocator.Release(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "released"})
}

// Payments

func (h *Handler) PayReservation(c *ginext.Context) {
	reservationID := c.Param("id")
	if _, err := uuid.Parse(reservationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid amount"})
		return
	}

	input := domain.InitiatePaymentInput{
		ReservationID: reservationID,
		Method:        req.Method,
		Amount:        amount,
		CardToken:     req.CardToken,
	}

	payment, err := h.paymentService.Initiate(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) GetPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) RefundPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	if err := h.paymentService.Refund(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "refunded"})
}

// PaymentWebhook receives the gateway's terminal charge outcome. Completion
// is idempotent, so gateway retries are safe.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	succeeded := req.Status == "successful"

	booking, err := h.paymentService.Complete(c.Request.Context(), req.PaymentID, succeeded)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if booking == nil {
		c.JSON(http.StatusOK, ginext.H{"status": "processed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Bookings

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Roster

func (h *Handler) JoinBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.rosterService.RequestJoin(c.Request.Context(), bookingID, req.PlayerID, req.Position)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJoinRequestResponse(request))
}

func (h *Handler) DecideJoinRequest(c *ginext.Context) {
	requestID := c.Param("id")
	if _, err := uuid.Parse(requestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.rosterService.Decide(c.Request.Context(), requestID, *req.Accept)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJoinRequestResponse(request))
}

func (h *Handler) ListTeamMembers(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	members, err := h.rosterService.Members(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToTeamMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// Chat

func (h *Handler) PostChatMessage(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.chatService.Post(c.Request.Context(), bookingID, req.SenderID, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChatMessageResponse(msg))
}

func (h *Handler) ListChatMessages(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	requesterID := c.Query("player_id")
	if _, err := uuid.Parse(requesterID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid player_id query param"})
		return
	}

	messages, err := h.chatService.List(c.Request.Context(), bookingID, requesterID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToChatMessageResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrGroundNotFound),
		errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrReservationExpired),
		errors.Is(err, domain.ErrPaymentExists),
		errors.Is(err, domain.ErrNotSucceeded),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrRequestNotPending),
		errors.Is(err, domain.ErrDuplicateConnection):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotParticipant):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrBookingNotTeamType),
		errors.Is(err, domain.ErrPhoneTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
