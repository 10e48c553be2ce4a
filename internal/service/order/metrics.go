package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		},
	)

	OrdersCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_cancelled_total",
			Help: "Total number of orders cancelled by customers",
		},
	)

	OrderCancellationsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_cancellations_rejected_total",
			Help: "Cancellation attempts rejected by the gate",
		},
		[]string{"reason"},
	)

	OrderStatusAppendedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_appended_total",
			Help: "Status events appended to the order history",
		},
		[]string{"status"},
	)
)
