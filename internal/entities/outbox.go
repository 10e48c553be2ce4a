package entities

import "time"

// OutboxEvent сообщение, записанное в той же транзакции, что и изменение заказа,
// и ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID        int64
	EventID   string
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// OrderStatusChanged тело события смены статуса заказа.
type OrderStatusChanged struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
