package outbox_relay

import (
	"context"
	"time"

	"booking/pkg/logger"
)

// OutboxRelay фоновая задача для background.Worker: на каждом тике выталкивает outbox в Kafka.
type OutboxRelay struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log handlerLogger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do ограничен интервалом, чтобы медленный брокер не копил запуски.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	sent, err := o.service.RelayPending(ctxWithTimeout)

	if sent > 0 {
		o.log.With(
			logger.NewField("published_events", sent),
		).Info("outbox relay")
	}

	return err
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
