package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"booking/internal/entities"
	"booking/internal/service/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Location часовой пояс, в котором клиент указывает дату заказа
	Location    *time.Location
	EventsTopic string
}

type Service struct {
	repository  Repository
	outbox      Outbox
	catalog     Catalog
	txManager   TxManager
	location    *time.Location
	eventsTopic string
}

func New(
	repository Repository,
	outbox Outbox,
	catalog Catalog,
	txManager TxManager,
	cfg Config,
) *Service {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repository:  repository,
		outbox:      outbox,
		catalog:     catalog,
		txManager:   txManager,
		location:    location,
		eventsTopic: cfg.EventsTopic,
	}
}

// CreateOrder оформляет заказ. Справочники проверяются до транзакции,
// сам заказ, первый статус и событие пишутся одной транзакцией.
func (s *Service) CreateOrder(ctx context.Context, create entities.OrderCreate) (*entities.Order, error) {
	customerID, ok := canonicalUUID(create.CustomerID)
	if !ok {
		return nil, ErrInvalidCustomerID
	}

	orderDate, err := pricing.ParseOrderDate(create.OrderDate, s.location)
	if err != nil {
		return nil, err
	}

	var expectedTotal *decimal.Decimal
	if raw := normalizeOptional(create.ExpectedTotal); raw != nil {
		amount, err := pricing.ParseAmount(*raw)
		if err != nil {
			return nil, err
		}
		expectedTotal = &amount
	}

	session, err := s.catalog.ResolveSession(ctx, create.Session)
	if err != nil {
		return nil, err
	}

	method, err := s.catalog.ResolvePaymentMethod(ctx, create.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	discountCode := normalizeOptional(create.DiscountCode)
	rule, err := s.resolveDiscount(ctx, discountCode)
	if err != nil {
		return nil, err
	}

	total := pricing.ComputeTotal(session.BasePrice, rule)
	if expectedTotal != nil && !expectedTotal.Equal(total) {
		return nil, fmt.Errorf("%w: expected %s, actual %s", ErrTotalMismatch, expectedTotal.String(), total.String())
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		OrderDate:       orderDate,
		WorkDate:        orderDate,
		WorkTime:        now,
		TotalAmount:     total,
		CustomerID:      customerID,
		SubCategoryID:   session.SubCategoryID,
		Session:         session.Session,
		DiscountCode:    discountCode,
		PaymentMethodID: method.ID,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if _, err := s.appendStatus(ctx, order.ID, entities.InitialOrderStatus, now); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrdersCreatedTotal.Inc()
	OrderStatusAppendedTotal.WithLabelValues(entities.InitialOrderStatus.String()).Inc()
	return &order, nil
}

// Quote считает цену так же, как CreateOrder, ничего не сохраняя.
func (s *Service) Quote(ctx context.Context, session string, discountCode *string) (*entities.Quote, error) {
	serviceSession, err := s.catalog.ResolveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	rule, err := s.resolveDiscount(ctx, normalizeOptional(discountCode))
	if err != nil {
		return nil, err
	}

	total := pricing.ComputeTotal(serviceSession.BasePrice, rule)
	return &entities.Quote{
		Session:      serviceSession.Session,
		BasePrice:    serviceSession.BasePrice,
		Discount:     serviceSession.BasePrice.Sub(total),
		Total:        total,
		DiscountRule: rule,
	}, nil
}

// CurrentStatus последняя запись журнала без проверки владельца.
func (s *Service) CurrentStatus(ctx context.Context, orderID string) (*entities.StatusEvent, error) {
	orderID, ok := canonicalUUID(orderID)
	if !ok {
		return nil, ErrInvalidOrderID
	}

	event, err := s.repository.GetCurrentStatus(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get current status: %w", err)
	}
	return event, nil
}

// OrderStatus текущий статус заказа для его владельца.
func (s *Service) OrderStatus(ctx context.Context, orderID, requesterID string) (*entities.StatusEvent, error) {
	order, err := s.ownedOrder(ctx, orderID, requesterID)
	if err != nil {
		return nil, err
	}
	return s.CurrentStatus(ctx, order.ID)
}

// StatusHistory журнал статусов от первой записи к последней.
func (s *Service) StatusHistory(ctx context.Context, orderID, requesterID string) ([]entities.StatusEvent, error) {
	order, err := s.ownedOrder(ctx, orderID, requesterID)
	if err != nil {
		return nil, err
	}

	history, err := s.repository.GetStatusHistory(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get status history: %w", err)
	}
	return history, nil
}

// AppendStatus дописывает статус в журнал. Порядок переходов не проверяется,
// это делают источники статусов. Нулевой at означает текущий момент.
func (s *Service) AppendStatus(ctx context.Context, orderID string, status entities.OrderStatusType, at time.Time) (*entities.StatusEvent, error) {
	orderID, ok := canonicalUUID(orderID)
	if !ok {
		return nil, ErrInvalidOrderID
	}
	if !status.IsKnown() {
		return nil, fmt.Errorf("%w: %q", ErrUndefinedStatus, status)
	}
	if at.IsZero() {
		at = time.Now()
	}
	at = at.UTC()

	var event *entities.StatusEvent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetByIDForUpdate(ctx, orderID); err != nil {
			return fmt.Errorf("lock order: %w", err)
		}

		appended, err := s.appendStatus(ctx, orderID, status, at)
		if err != nil {
			return err
		}
		event = appended
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrderStatusAppendedTotal.WithLabelValues(status.String()).Inc()
	return event, nil
}

// CancelOrder отменяет заказ владельца, пока исполнитель не назначен.
// Строка заказа блокируется, поэтому проверка статуса и запись отмены
// не пересекаются с другими изменениями того же заказа.
func (s *Service) CancelOrder(ctx context.Context, orderID, requesterID string) (*entities.StatusEvent, error) {
	orderID, ok := canonicalUUID(orderID)
	if !ok {
		return nil, ErrInvalidOrderID
	}
	requesterID, ok = canonicalUUID(requesterID)
	if !ok {
		return nil, ErrInvalidCustomerID
	}

	var (
		event        *entities.StatusEvent
		rejectReason string
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		if order.CustomerID != requesterID {
			rejectReason = "forbidden"
			return ErrNotOrderOwner
		}

		current, err := s.repository.GetCurrentStatus(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get current status: %w", err)
		}
		if !current.Status.IsCancellable() {
			rejectReason = "status"
			return fmt.Errorf("%w: %s", ErrOrderNotCancellable, current.Status)
		}

		appended, err := s.appendStatus(ctx, orderID, entities.OrderCancelled, time.Now().UTC())
		if err != nil {
			return err
		}
		event = appended
		return nil
	})
	if err != nil {
		if rejectReason != "" {
			OrderCancellationsRejectedTotal.WithLabelValues(rejectReason).Inc()
		}
		return nil, err
	}

	OrdersCancelledTotal.Inc()
	OrderStatusAppendedTotal.WithLabelValues(entities.OrderCancelled.String()).Inc()
	return event, nil
}

// ListOrders заказы клиента с текущим статусом, новые сверху.
func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.OrderSummary, error) {
	customerID, ok := canonicalUUID(filter.CustomerID)
	if !ok {
		return nil, ErrInvalidCustomerID
	}
	filter.CustomerID = customerID

	if raw := normalizeOptional(filter.SubCategoryID); raw != nil {
		subCategoryID, ok := canonicalUUID(*raw)
		if !ok {
			return nil, fmt.Errorf("%w: subcategory %q", entities.ErrInvalidInput, *raw)
		}
		filter.SubCategoryID = &subCategoryID
	} else {
		filter.SubCategoryID = nil
	}
	if filter.Status != nil && !filter.Status.IsKnown() {
		return nil, fmt.Errorf("%w: %q", ErrUndefinedStatus, *filter.Status)
	}
	filter.Search = normalizeOptional(filter.Search)

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) resolveDiscount(ctx context.Context, code *string) (*entities.DiscountRule, error) {
	if code == nil {
		return nil, nil
	}

	rule, err := s.catalog.ResolveDiscount(ctx, *code)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDiscountCode, *code)
		}
		return nil, err
	}
	return rule, nil
}

func (s *Service) ownedOrder(ctx context.Context, orderID, requesterID string) (*entities.Order, error) {
	orderID, ok := canonicalUUID(orderID)
	if !ok {
		return nil, ErrInvalidOrderID
	}
	requesterID, ok = canonicalUUID(requesterID)
	if !ok {
		return nil, ErrInvalidCustomerID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.CustomerID != requesterID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

// appendStatus пишет статус и событие для relay в текущую транзакцию.
func (s *Service) appendStatus(ctx context.Context, orderID string, status entities.OrderStatusType, at time.Time) (*entities.StatusEvent, error) {
	event, err := s.repository.AppendStatus(ctx, orderID, status, at)
	if err != nil {
		return nil, fmt.Errorf("append status %s: %w", status, err)
	}

	changed := entities.OrderStatusChanged{
		EventID:    uuid.NewString(),
		OrderID:    orderID,
		Status:     status.String(),
		OccurredAt: event.RecordedAt,
	}
	payload, err := json.Marshal(changed)
	if err != nil {
		return nil, fmt.Errorf("marshal status event: %w", err)
	}

	err = s.outbox.Add(ctx, entities.OutboxEvent{
		EventID: changed.EventID,
		Topic:   s.eventsTopic,
		Key:     orderID,
		Payload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("add status event to outbox: %w", err)
	}

	return event, nil
}
