package catalog

import (
	"context"
	"fmt"
	"strings"

	"booking/internal/entities"

	"github.com/google/uuid"
)

// Catalog справочники: сессии услуг, способы оплаты, скидки. Только чтение.
type Catalog struct {
	repository Repository
}

func New(repository Repository) *Catalog {
	return &Catalog{
		repository: repository,
	}
}

func (c *Catalog) ResolveSession(ctx context.Context, session string) (*entities.ServiceSession, error) {
	session = strings.TrimSpace(session)
	if session == "" {
		return nil, ErrSessionNotFound
	}

	serviceSession, err := c.repository.GetSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("resolve session %q: %w", session, err)
	}
	return serviceSession, nil
}

func (c *Catalog) ResolvePaymentMethod(ctx context.Context, id string) (*entities.PaymentMethod, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrPaymentMethodNotFound
	}
	id = parsed.String()

	method, err := c.repository.GetPaymentMethod(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve payment method %q: %w", id, err)
	}
	return method, nil
}

// ResolveDiscount ищет активную скидку. Код чувствителен к регистру.
func (c *Catalog) ResolveDiscount(ctx context.Context, code string) (*entities.DiscountRule, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrDiscountNotFound
	}

	rule, err := c.repository.GetActiveDiscount(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("resolve discount %q: %w", code, err)
	}
	return rule, nil
}
