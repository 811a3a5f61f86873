package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DeliveriesConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_deliveries_consumed_total",
			Help: "Total number of OrderCreated deliveries received",
		},
	)

	PaymentsSucceeded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_succeeded_total",
			Help: "Total number of payments authorized",
		},
	)

	PaymentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_failed_total",
			Help: "Total number of payments declined",
		},
	)

	DuplicatesDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_duplicates_dropped_total",
			Help: "Total number of redeliveries acked without side effects",
		},
	)

	PoisonDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_poison_dropped_total",
			Help: "Total number of unparseable deliveries acked and dropped",
		},
	)

	HandlerFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_handler_failures_total",
			Help: "Total number of deliveries nacked due to store or publish failures",
		},
	)
)

func Register() {
	prometheus.MustRegister(DeliveriesConsumed)
	prometheus.MustRegister(PaymentsSucceeded)
	prometheus.MustRegister(PaymentsFailed)
	prometheus.MustRegister(DuplicatesDropped)
	prometheus.MustRegister(PoisonDropped)
	prometheus.MustRegister(HandlerFailures)
}
