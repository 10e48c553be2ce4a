//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"booking/internal/entities"
)

type Repository interface {
	GetSession(ctx context.Context, session string) (*entities.ServiceSession, error)
	GetPaymentMethod(ctx context.Context, id string) (*entities.PaymentMethod, error)
	GetActiveDiscount(ctx context.Context, code string) (*entities.DiscountRule, error)
}
