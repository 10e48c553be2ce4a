package order_status_changed

import "time"

// statusReport статус заказа от внешней системы (оплата, диспетчер исполнителей)
type statusReport struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
