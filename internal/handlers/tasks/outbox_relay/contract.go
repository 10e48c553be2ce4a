//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"

	"booking/pkg/logger"
)

type Service interface {
	// RelayPending публикует пачку неотправленных событий и возвращает число отправленных.
	RelayPending(ctx context.Context) (int, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
