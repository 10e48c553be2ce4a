package outbox

import (
	"context"
	"fmt"
)

const defaultBatchSize = 100

// Relay переносит события из таблицы outbox в Kafka. Доставка at-least-once:
// событие помечается отправленным только после успешной публикации.
type Relay struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	batchSize  int
}

func NewRelay(repository Repository, publisher Publisher, txManager TxManager, batchSize int) *Relay {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Relay{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		batchSize:  batchSize,
	}
}

// RelayPending публикует одну пачку. Если публикация оборвалась на середине,
// уже отправленные события всё равно помечаются, ошибка возвращается после коммита.
func (r *Relay) RelayPending(ctx context.Context) (int, error) {
	var (
		sent       int
		publishErr error
	)

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		sent, publishErr = 0, nil

		events, err := r.repository.FetchPending(ctx, r.batchSize)
		if err != nil {
			return fmt.Errorf("fetch pending events: %w", err)
		}

		sentIDs := make([]int64, 0, len(events))
		for _, event := range events {
			if err := r.publisher.Publish(ctx, event.Topic, event.Key, event.Payload); err != nil {
				OutboxPublishFailedTotal.Inc()
				publishErr = fmt.Errorf("publish event %s: %w", event.EventID, err)
				break
			}
			sentIDs = append(sentIDs, event.ID)
		}

		if err := r.repository.MarkSent(ctx, sentIDs); err != nil {
			return fmt.Errorf("mark events sent: %w", err)
		}
		sent = len(sentIDs)
		return nil
	})
	if err != nil {
		return 0, err
	}

	OutboxPublishedTotal.Add(float64(sent))
	return sent, publishErr
}
