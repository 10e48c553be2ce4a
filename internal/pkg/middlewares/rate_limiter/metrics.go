package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitExceededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Requests rejected by the token bucket, by route template",
		},
		[]string{"method", "route"},
	)

	RateLimitAllowedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_allowed_total",
			Help: "Requests that passed the token bucket",
		},
	)
)
