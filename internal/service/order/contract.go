//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"booking/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	// GetByIDForUpdate блокирует строку заказа до конца транзакции
	GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.OrderSummary, error)

	AppendStatus(ctx context.Context, orderID string, status entities.OrderStatusType, at time.Time) (*entities.StatusEvent, error)
	GetCurrentStatus(ctx context.Context, orderID string) (*entities.StatusEvent, error)
	GetStatusHistory(ctx context.Context, orderID string) ([]entities.StatusEvent, error)
}

type Outbox interface {
	Add(ctx context.Context, event entities.OutboxEvent) error
}

type Catalog interface {
	ResolveSession(ctx context.Context, session string) (*entities.ServiceSession, error)
	ResolvePaymentMethod(ctx context.Context, id string) (*entities.PaymentMethod, error)
	ResolveDiscount(ctx context.Context, code string) (*entities.DiscountRule, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
