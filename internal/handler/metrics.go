package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chef_market",
			Subsystem: "kafka_consumer",
			Name:      "status_events_processed_total",
			Help:      "Total number of successfully processed status events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chef_market",
			Subsystem: "kafka_consumer",
			Name:      "status_events_failed_total",
			Help:      "Total number of status events that could not be processed",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chef_market",
			Subsystem: "kafka_consumer",
			Name:      "status_events_dlq_total",
			Help:      "Total number of status events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chef_market",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "chef_market",
			Subsystem: "kafka_consumer",
			Name:      "status_event_processing_duration_seconds",
			Help:      "Histogram of status event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "chef_market",
			Subsystem: "kafka_consumer",
			Name:      "status_events_in_progress",
			Help:      "Number of status events currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chef_market",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order details",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "chef_market",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order details",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "chef_market",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order details",
		},
	)

	streamsOpen = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "chef_market",
			Subsystem: "http",
			Name:      "order_streams_open",
			Help:      "Number of open order status streams",
		},
	)

	streamEventsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chef_market",
			Subsystem: "http",
			Name:      "order_stream_events_total",
			Help:      "Total number of status events pushed to streams",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
		streamsOpen,
		streamEventsSent,
	)
}
