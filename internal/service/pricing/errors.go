package pricing

import (
	"fmt"

	"booking/internal/entities"
)

var (
	ErrMalformedAmount = fmt.Errorf("malformed amount: %w", entities.ErrInvalidInput)
	ErrMalformedDate   = fmt.Errorf("malformed date: %w", entities.ErrInvalidInput)
)
