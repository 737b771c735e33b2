package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "edu_hotel",
			Name:      "booking_created_total",
			Help:      "Count of bookings appended to the ledger.",
		},
	)

	statusTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edu_hotel",
			Name:      "booking_status_transition_total",
			Help:      "Count of booking status transitions by target status.",
		},
		[]string{"to"},
	)

	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edu_hotel",
			Name:      "login_attempts_total",
			Help:      "Count of login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	signups = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "edu_hotel",
			Name:      "signups_total",
			Help:      "Count of successful signups.",
		},
	)

	paymentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edu_hotel",
			Name:      "payments_processed_total",
			Help:      "Count of mock payments by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, statusTransition, loginAttempts, signups, paymentsProcessed)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncStatusTransition(to string) {
	statusTransition.WithLabelValues(to).Inc()
}

func IncLoginAttempt(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

func IncSignup() {
	signups.Inc()
}

func IncPaymentProcessed(outcome string) {
	paymentsProcessed.WithLabelValues(outcome).Inc()
}
