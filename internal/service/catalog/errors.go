package catalog

import (
	"fmt"

	"booking/internal/entities"
)

var (
	ErrSessionNotFound       = fmt.Errorf("service session: %w", entities.ErrNotFound)
	ErrPaymentMethodNotFound = fmt.Errorf("payment method: %w", entities.ErrNotFound)
	// ErrDiscountNotFound код отсутствует или выключен
	ErrDiscountNotFound = fmt.Errorf("discount: %w", entities.ErrNotFound)
)
