package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportify_reservations_total",
			Help: "Reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	paymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportify_payments_total",
			Help: "Payment completions by outcome",
		},
		[]string{"outcome"},
	)

	joinDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportify_join_decisions_total",
			Help: "Join request decisions by result",
		},
		[]string{"result"},
	)

	expiredReservationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportify_expired_reservations_total",
			Help: "Reservations expired by the sweep",
		},
	)

	loyaltyCreditsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportify_loyalty_credits_total",
			Help: "Bookings settled by the loyalty updater",
		},
	)
)

func ObserveReservation(outcome string) { reservationsTotal.WithLabelValues(outcome).Inc() }

func ObservePayment(outcome string) { paymentsTotal.WithLabelValues(outcome).Inc() }

func ObserveJoinDecision(result string) { joinDecisionsTotal.WithLabelValues(result).Inc() }

func AddExpiredReservations(n int) { expiredReservationsTotal.Add(float64(n)) }

func AddLoyaltyCredits(n int) { loyaltyCreditsTotal.Add(float64(n)) }
