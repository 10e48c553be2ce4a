//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_quote_post_test
package order_quote_post

import (
	"context"

	"booking/internal/entities"
	"booking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Quote(ctx context.Context, session string, discountCode *string) (*entities.Quote, error)
}
