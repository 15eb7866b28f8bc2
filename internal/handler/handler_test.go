package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/handler/dto"
	hmocks "github.com/MahikaLakoul07/SportifyBackend/internal/handler/mocks"
)

type handlerMocks struct {
	player    *hmocks.MockPlayerSvc
	ground    *hmocks.MockGroundSvc
	allocator *hmocks.MockAllocatorSvc
	payment   *hmocks.MockPaymentSvc
	booking   *hmocks.MockBookingSvc
	roster    *hmocks.MockRosterSvc
	chat      *hmocks.MockChatSvc
	loyalty   *hmocks.MockLoyaltySvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		player:    hmocks.NewMockPlayerSvc(t),
		ground:    hmocks.NewMockGroundSvc(t),
		allocator: hmocks.NewMockAllocatorSvc(t),
		payment:   hmocks.NewMockPaymentSvc(t),
		booking:   hmocks.NewMockBookingSvc(t),
		roster:    hmocks.NewMockRosterSvc(t),
		chat:      hmocks.NewMockChatSvc(t),
		loyalty:   hmocks.NewMockLoyaltySvc(t),
	}

	h := NewHandler(m.player, m.ground, m.allocator, m.payment, m.booking, m.roster, m.chat, m.loyalty)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/players", h.CreatePlayer)
		api.GET("/players/:id/loyalty", h.GetPlayerLoyalty)
		api.POST("/grounds/:id/reserve", h.ReserveSlot)
		api.POST("/reservations/:id/pay", h.PayReservation)
		api.POST("/payments/:id/refund", h.RefundPayment)
		api.POST("/webhooks/payment", h.PaymentWebhook)
		api.POST("/bookings/:id/join", h.JoinBooking)
		api.POST("/requests/:id/decide", h.DecideJoinRequest)
		api.POST("/bookings/:id/chat", h.PostChatMessage)
		api.GET("/bookings/:id/chat", h.ListChatMessages)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_ReserveSlot_Success(t *testing.T) {
	m, r := setupRouter(t)

	groundID := uuid.New().String()
	playerID := uuid.New().String()
	reservation := &domain.Reservation{
		ID:          uuid.New().String(),
		GroundID:    groundID,
		PlayerID:    playerID,
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartMin:    18 * 60,
		DurationMin: 60,
		BookingType: domain.BookingSolo,
		Status:      domain.ReservationPending,
		ExpiresAt:   time.Now().Add(10 * time.Minute),
	}

	m.allocator.EXPECT().Reserve(mock.Anything, mock.Anything).Return(reservation, nil)

	w := doJSON(t, r, http.MethodPost, "/api/grounds/"+groundID+"/reserve", dto.ReserveRequest{
		PlayerID:    playerID,
		Date:        "2026-03-02",
		Start:       "18:00",
		DurationMin: 60,
		BookingType: "SOLO",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "18:00", resp.Start)
}

func TestHandler_ReserveSlot_SlotTaken(t *testing.T) {
	m, r := setupRouter(t)

	groundID := uuid.New().String()

	m.allocator.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotTaken)

	w := doJSON(t, r, http.MethodPost, "/api/grounds/"+groundID+"/reserve", dto.ReserveRequest{
		PlayerID:    uuid.New().String(),
		Date:        "2026-03-02",
		Start:       "18:00",
		DurationMin: 60,
		BookingType: "SOLO",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReserveSlot_InvalidGroundID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/grounds/not-a-uuid/reserve", dto.ReserveRequest{
		PlayerID:    uuid.New().String(),
		Date:        "2026-03-02",
		Start:       "18:00",
		DurationMin: 60,
		BookingType: "SOLO",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReserveSlot_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/grounds/"+uuid.New().String()+"/reserve", dto.ReserveRequest{
		PlayerID:    uuid.New().String(),
		Date:        "02.03.2026",
		Start:       "18:00",
		DurationMin: 60,
		BookingType: "SOLO",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PayReservation_Success(t *testing.T) {
	m, r := setupRouter(t)

	reservationID := uuid.New().String()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		ReservationID: reservationID,
		Method:        "card",
		Amount:        decimal.RequireFromString("1500.00"),
		Status:        domain.PaymentInitiated,
	}

	m.payment.EXPECT().Initiate(mock.Anything, mock.Anything).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+reservationID+"/pay", dto.PayRequest{
		Method:    "card",
		Amount:    "1500.00",
		CardToken: "tok_1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INITIATED", resp.Status)
	assert.Equal(t, "1500.00", resp.Amount)
}

func TestHandler_PayReservation_BadAmount(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+uuid.New().String()+"/pay", dto.PayRequest{
		Method: "card",
		Amount: "a lot",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentWebhook_Success(t *testing.T) {
	m, r := setupRouter(t)

	paymentID := uuid.New().String()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		GroundID:    uuid.New().String(),
		PlayerID:    uuid.New().String(),
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartMin:    18 * 60,
		DurationMin: 60,
		BookingType: domain.BookingSolo,
	}

	m.payment.EXPECT().Complete(mock.Anything, paymentID, true).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/webhooks/payment", dto.PaymentWebhookRequest{
		PaymentID: paymentID,
		Status:    "successful",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
}

func TestHandler_PaymentWebhook_Failed(t *testing.T) {
	m, r := setupRouter(t)

	paymentID := uuid.New().String()

	m.payment.EXPECT().Complete(mock.Anything, paymentID, false).Return(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/webhooks/payment", dto.PaymentWebhookRequest{
		PaymentID: paymentID,
		Status:    "failed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/webhooks/payment", map[string]string{
		"payment_id": uuid.New().String(),
		"status":     "pending",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RefundPayment_NotSucceeded(t *testing.T) {
	m, r := setupRouter(t)

	paymentID := uuid.New().String()

	m.payment.EXPECT().Refund(mock.Anything, paymentID).Return(domain.ErrNotSucceeded)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+paymentID+"/refund", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_JoinBooking_CapacityFull(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	playerID := uuid.New().String()

	m.roster.EXPECT().RequestJoin(mock.Anything, bookingID, playerID, "striker").
		Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/join", dto.JoinRequest{
		PlayerID: playerID,
		Position: "striker",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DecideJoinRequest_Accept(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	decided := &domain.JoinRequest{
		ID:       requestID,
		Status:   domain.JoinRequestAccepted,
		PlayerID: uuid.New().String(),
	}

	m.roster.EXPECT().Decide(mock.Anything, requestID, true).Return(decided, nil)

	accept := true
	w := doJSON(t, r, http.MethodPost, "/api/requests/"+requestID+"/decide", dto.DecideRequest{
		Accept: &accept,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.JoinRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACCEPTED", resp.Status)
}

func TestHandler_DecideJoinRequest_MissingAccept(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/requests/"+uuid.New().String()+"/decide", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PostChat_NotParticipant(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	senderID := uuid.New().String()

	m.chat.EXPECT().Post(mock.Anything, bookingID, senderID, "hi").
		Return(nil, domain.ErrNotParticipant)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/chat", dto.PostMessageRequest{
		SenderID: senderID,
		Text:     "hi",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListChat_RequiresPlayerID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+uuid.New().String()+"/chat", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetPlayerLoyalty(t *testing.T) {
	m, r := setupRouter(t)

	playerID := uuid.New().String()

	m.loyalty.EXPECT().ByPlayer(mock.Anything, playerID).Return(&domain.Loyalty{
		PlayerID:     playerID,
		TotalMatches: 3,
		Points:       30,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/players/"+playerID+"/loyalty", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoyaltyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalMatches)
	assert.Equal(t, 30, resp.Points)
}

func TestHandler_CreatePlayer_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/players", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
