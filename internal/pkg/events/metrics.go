package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LifecycleActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifecycle_actions_total",
			Help: "Total number of order lifecycle actions by outcome",
		},
		[]string{"action", "outcome"},
	)

	SubscriberFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifecycle_subscriber_failures_total",
			Help: "Total number of failed lifecycle event deliveries",
		},
		[]string{"subscriber"},
	)
)
