package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	legacyOrdersImported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "legacy_intake",
			Name:      "orders_imported_total",
			Help:      "Total number of successfully imported legacy orders",
		},
	)

	legacyOrdersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "legacy_intake",
			Name:      "orders_failed_total",
			Help:      "Total number of failed legacy order imports",
		},
	)

	legacyOrdersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "legacy_intake",
			Name:      "orders_dlq_total",
			Help:      "Total number of legacy orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "legacy_intake",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	legacyOrderProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_tracker",
			Subsystem: "legacy_intake",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of legacy order processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	legacyOrdersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_tracker",
			Subsystem: "legacy_intake",
			Name:      "orders_in_progress",
			Help:      "Number of legacy orders currently being processed",
		},
	)
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created through the API",
		},
	)

	ordersUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "orders",
			Name:      "updated_total",
			Help:      "Total number of orders updated through the API",
		},
	)

	ordersDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "orders",
			Name:      "deleted_total",
			Help:      "Total number of orders deleted through the API",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_tracker",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by id",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_tracker",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by id",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_tracker",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by id",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		legacyOrdersImported,
		legacyOrdersFailed,
		legacyOrdersDLQ,
		commitErrors,
		legacyOrderProcessingDuration,
		legacyOrdersInProgress,

		ordersCreated,
		ordersUpdated,
		ordersDeleted,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
