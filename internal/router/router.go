package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreatePlayer(c *ginext.Context)
	GetPlayer(c *ginext.Context)
	ConnectPlayer(c *ginext.Context)
	ListConnections(c *ginext.Context)
	GetPlayerBookings(c *ginext.Context)
	GetPlayerLoyalty(c *ginext.Context)
	CreateGround(c *ginext.Context)
	GetGround(c *ginext.Context)
	ListGrounds(c *ginext.Context)
	DeleteGround(c *ginext.Context)
	AddGroundDocument(c *ginext.Context)
	ListGroundDocuments(c *ginext.Context)
	ReserveSlot(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ReleaseReservation(c *ginext.Context)
	PayReservation(c *ginext.Context)
	GetPayment(c *ginext.Context)
	RefundPayment(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	GetBooking(c *ginext.Context)
	JoinBooking(c *ginext.Context)
	DecideJoinRequest(c *ginext.Context)
	ListTeamMembers(c *ginext.Context)
	PostChatMessage(c *ginext.Context)
	ListChatMessages(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Players
		api.POST("/players", h.CreatePlayer)
		api.GET("/players/:id", h.GetPlayer)
		api.GET("/players/:id/bookings", h.GetPlayerBookings)
		api.GET("/players/:id/loyalty", h.GetPlayerLoyalty)
		api.POST("/players/:id/connections", h.ConnectPlayer)
		api.GET("/players/:id/connections", h.ListConnections)

		// Grounds
		api.POST("/grounds", h.CreateGround)
		api.GET("/grounds", h.ListGrounds)
		api.GET("/grounds/:id", h.GetGround)
		api.DELETE("/grounds/:id", h.DeleteGround)
		api.POST("/grounds/:id/documents", h.AddGroundDocument)
		api.GET("/grounds/:id/documents", h.ListGroundDocuments)
		api.POST("/grounds/:id/reserve", h.ReserveSlot)

		// Reservations
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/release", h.ReleaseReservation)
		api.POST("/reservations/:id/pay", h.PayReservation)

		// Payments
		api.GET("/payments/:id", h.GetPayment)
		api.POST("/payments/:id/refund", h.RefundPayment)
		api.POST("/webhooks/payment", h.PaymentWebhook)

		// Bookings
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/join", h.JoinBooking)
		api.GET("/bookings/:id/members", h.ListTeamMembers)
		api.POST("/bookings/:id/chat", h.PostChatMessage)
		api.GET("/bookings/:id/chat", h.ListChatMessages)

		// Join requests
		api.POST("/requests/:id/decide", h.DecideJoinRequest)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
