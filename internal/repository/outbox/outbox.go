package outbox

import (
	"context"
	"fmt"

	"booking/internal/entities"
	"booking/internal/repository"
	"booking/internal/service/outbox"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Add(ctx context.Context, event entities.OutboxEvent) error {
	query := `INSERT INTO outbox (event_id, topic, key, payload) VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(ctx, query, event.EventID, event.Topic, event.Key, event.Payload)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return outbox.ErrDuplicateEvent
		}
		return fmt.Errorf("unexpected outbox repository add error: %w", err)
	}
	return nil
}

// FetchPending выбирает неотправленные события по порядку записи. Строки блокируются,
// параллельный relay пропустит их и возьмёт следующие.
func (r *Repository) FetchPending(ctx context.Context, limit int) ([]entities.OutboxEvent, error) {
	query := `
		SELECT id, event_id, topic, key, payload, created_at
		FROM outbox
		WHERE sent_at IS NULL
		ORDER BY id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.OutboxEvent, 0, limit)
	for rows.Next() {
		var event entities.OutboxEvent
		err := rows.Scan(
			&event.ID,
			&event.EventID,
			&event.Topic,
			&event.Key,
			&event.Payload,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}
	return events, nil
}

func (r *Repository) MarkSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE outbox SET sent_at = NOW() WHERE id = ANY($1)`
	if _, err := r.querier.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("unexpected outbox repository mark sent error: %w", err)
	}
	return nil
}
