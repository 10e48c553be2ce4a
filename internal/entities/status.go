package entities

import "time"

type OrderStatusType string

const (
	OrderAwaitingPayment  OrderStatusType = "awaiting_payment"
	OrderFindingWorker    OrderStatusType = "finding_worker"
	OrderWorkerEnRoute    OrderStatusType = "worker_en_route"
	OrderWorkStarted      OrderStatusType = "work_started"
	OrderPaymentCompleted OrderStatusType = "payment_completed"
	OrderCompleted        OrderStatusType = "completed"
	OrderCancelled        OrderStatusType = "cancelled"
)

const InitialOrderStatus = OrderAwaitingPayment

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsKnown() bool {
	switch s {
	case OrderAwaitingPayment,
		OrderFindingWorker,
		OrderWorkerEnRoute,
		OrderWorkStarted,
		OrderPaymentCompleted,
		OrderCompleted,
		OrderCancelled:
		return true
	default:
		return false
	}
}

// IsCancellable true для статусов до назначения исполнителя.
func (s OrderStatusType) IsCancellable() bool {
	return s == OrderAwaitingPayment || s == OrderFindingWorker
}

// StatusEvent неизменяемая запись журнала статусов заказа.
// Seq монотонный номер записи, разрешает равенство RecordedAt.
type StatusEvent struct {
	Seq        int64
	OrderID    string
	Status     OrderStatusType
	Label      string
	RecordedAt time.Time
}
