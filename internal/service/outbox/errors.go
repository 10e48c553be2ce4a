package outbox

import (
	"fmt"

	"booking/internal/entities"
)

var ErrDuplicateEvent = fmt.Errorf("outbox event already exists: %w", entities.ErrConflict)
