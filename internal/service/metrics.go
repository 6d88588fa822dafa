package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Order status transitions applied.",
	}, []string{"from", "to", "actor"})

	transitionsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "orders",
		Name:      "transitions_failed_total",
		Help:      "Order status transitions that were refused or failed.",
	}, []string{"from", "to"})

	captures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "payments",
		Name:      "captures_total",
		Help:      "Payment capture attempts by result.",
	}, []string{"result"})

	checkouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "orders",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by result.",
	}, []string{"result"})

	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Status change events that could not be published.",
	})

	sweepRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "sweeper",
		Name:      "orders_total",
		Help:      "Orders visited by the expiry sweep by outcome.",
	}, []string{"outcome"})

	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "chef_market",
		Subsystem: "sweeper",
		Name:      "run_duration_seconds",
		Help:      "Duration of expiry sweep runs.",
		Buckets:   prometheus.DefBuckets,
	})
)
