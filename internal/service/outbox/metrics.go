package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutboxPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_events_published_total",
			Help: "Outbox events published to Kafka",
		},
	)

	OutboxPublishFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_events_publish_failed_total",
			Help: "Outbox publish attempts that failed",
		},
	)
)
