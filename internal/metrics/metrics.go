package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bustraveller",
			Name:      "bookings_created_total",
			Help:      "Count of booking submissions by outcome.",
		},
		[]string{"status"},
	)

	bookingsListed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bustraveller",
			Name:      "bookings_listed_total",
			Help:      "Count of admin listing requests by outcome.",
		},
		[]string{"status"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bustraveller",
			Name:      "booking_notifications_total",
			Help:      "Count of confirmation emails by delivery result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingsListed, notifications)
	})
}

func IncBookingCreated(status string) {
	bookingsCreated.WithLabelValues(status).Inc()
}

func IncBookingsListed(status string) {
	bookingsListed.WithLabelValues(status).Inc()
}

func IncNotification(result string) {
	notifications.WithLabelValues(result).Inc()
}
