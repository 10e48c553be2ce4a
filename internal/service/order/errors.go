package order

import (
	"errors"
	"fmt"

	"booking/internal/entities"
)

var (
	ErrInvalidCustomerID   = fmt.Errorf("invalid customer id: %w", entities.ErrInvalidInput)
	ErrInvalidOrderID      = fmt.Errorf("invalid order id: %w", entities.ErrInvalidInput)
	ErrInvalidDiscountCode = fmt.Errorf("invalid discount code: %w", entities.ErrInvalidInput)
	ErrTotalMismatch       = fmt.Errorf("total payment does not match current price: %w", entities.ErrInvalidInput)
	ErrUndefinedStatus     = fmt.Errorf("undefined order status: %w", entities.ErrInvalidInput)

	ErrOrderNotFound       = fmt.Errorf("order: %w", entities.ErrNotFound)
	ErrNotOrderOwner       = fmt.Errorf("order belongs to another customer: %w", entities.ErrForbidden)
	ErrOrderNotCancellable = fmt.Errorf("order cannot be cancelled in its current status: %w", entities.ErrInvalidState)
	ErrOrderConflict       = fmt.Errorf("order already exists: %w", entities.ErrConflict)

	// ErrStatusNotConfigured в справочнике order_statuses нет нужного кода, это поломка окружения
	ErrStatusNotConfigured = errors.New("order status is not configured")
)
