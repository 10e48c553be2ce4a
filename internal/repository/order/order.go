package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"booking/internal/entities"
	"booking/internal/repository"
	"booking/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_date, work_date, work_time, total_amount::text, customer_id,
	worker_id, sub_category_id, session, discount_code, payment_method_id`

var ErrMissingReference = fmt.Errorf("order references a missing catalog entry: %w", entities.ErrNotFound)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, o entities.Order) error {
	query := `
		INSERT INTO orders (id, order_date, work_date, work_time, total_amount, customer_id,
			worker_id, sub_category_id, session, discount_code, payment_method_id)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11)`

	_, err := r.querier.Exec(
		ctx,
		query,
		o.ID,
		o.OrderDate,
		o.WorkDate,
		o.WorkTime,
		o.TotalAmount.String(),
		o.CustomerID,
		o.WorkerID,
		o.SubCategoryID,
		o.Session,
		o.DiscountCode,
		o.PaymentMethodID,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrOrderConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return ErrMissingReference
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	return r.getByID(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error) {
	return r.getByID(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID)
}

func (r *Repository) getByID(ctx context.Context, query, orderID string) (*entities.Order, error) {
	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.OrderDate,
		&orderDB.WorkDate,
		&orderDB.WorkTime,
		&orderDB.TotalAmount,
		&orderDB.CustomerID,
		&orderDB.WorkerID,
		&orderDB.SubCategoryID,
		&orderDB.Session,
		&orderDB.DiscountCode,
		&orderDB.PaymentMethodID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB)
}

// AppendStatus вставляет запись журнала, код статуса переводится в id справочника в том же запросе.
func (r *Repository) AppendStatus(ctx context.Context, orderID string, status entities.OrderStatusType, at time.Time) (*entities.StatusEvent, error) {
	query := `
		WITH inserted AS (
			INSERT INTO order_status_events (order_id, status_id, recorded_at)
			SELECT $1::uuid, s.id, $3::timestamptz
			FROM order_statuses s
			WHERE s.code = $2
			RETURNING seq, order_id, status_id, recorded_at
		)
		SELECT i.seq, i.order_id, s.code, s.label, i.recorded_at
		FROM inserted i
		JOIN order_statuses s ON s.id = i.status_id`

	var eventDB StatusEventDB
	err := r.querier.QueryRow(ctx, query, orderID, status.String(), at).Scan(
		&eventDB.Seq,
		&eventDB.OrderID,
		&eventDB.Code,
		&eventDB.Label,
		&eventDB.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", order.ErrStatusNotConfigured, status)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository append status error: %w", err)
	}

	return ToStatusEventDomain(&eventDB), nil
}

// GetCurrentStatus при равном recorded_at побеждает более поздняя вставка.
func (r *Repository) GetCurrentStatus(ctx context.Context, orderID string) (*entities.StatusEvent, error) {
	query := `
		SELECT e.seq, e.order_id, s.code, s.label, e.recorded_at
		FROM order_status_events e
		JOIN order_statuses s ON s.id = e.status_id
		WHERE e.order_id = $1
		ORDER BY e.recorded_at DESC, e.seq DESC
		LIMIT 1`

	var eventDB StatusEventDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&eventDB.Seq,
		&eventDB.OrderID,
		&eventDB.Code,
		&eventDB.Label,
		&eventDB.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get current status error: %w", err)
	}

	return ToStatusEventDomain(&eventDB), nil
}

func (r *Repository) GetStatusHistory(ctx context.Context, orderID string) ([]entities.StatusEvent, error) {
	query := `
		SELECT e.seq, e.order_id, s.code, s.label, e.recorded_at
		FROM order_status_events e
		JOIN order_statuses s ON s.id = e.status_id
		WHERE e.order_id = $1
		ORDER BY e.recorded_at ASC, e.seq ASC`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
	}
	defer rows.Close()

	history := make([]entities.StatusEvent, 0, 4)
	for rows.Next() {
		var eventDB StatusEventDB
		err := rows.Scan(
			&eventDB.Seq,
			&eventDB.OrderID,
			&eventDB.Code,
			&eventDB.Label,
			&eventDB.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
		}
		history = append(history, *ToStatusEventDomain(&eventDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
	}
	return history, nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.OrderSummary, error) {
	builder := qb.
		Select(
			"o.id",
			"sc.name",
			"o.session",
			"o.total_amount::text",
			"w.name",
			"st.code",
			"st.label",
			"o.order_date",
		).
		From("orders o").
		Join("sub_categories sc ON sc.id = o.sub_category_id").
		LeftJoin("workers w ON w.id = o.worker_id").
		JoinClause(`JOIN LATERAL (
			SELECT e.status_id
			FROM order_status_events e
			WHERE e.order_id = o.id
			ORDER BY e.recorded_at DESC, e.seq DESC
			LIMIT 1
		) last_event ON TRUE`).
		Join("order_statuses st ON st.id = last_event.status_id").
		Where(sq.Eq{"o.customer_id": filter.CustomerID})

	// опциональные фильтры
	if filter.SubCategoryID != nil {
		builder = builder.Where(sq.Eq{"o.sub_category_id": *filter.SubCategoryID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"st.code": filter.Status.String()})
	}
	if filter.Search != nil {
		pattern := "%" + escapeLike(*filter.Search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"sc.name": pattern},
			sq.ILike{"o.session": pattern},
		})
	}

	builder = builder.OrderBy("o.order_date DESC", "o.work_time DESC", "o.id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	summaries := make([]OrderSummaryDB, 0, 8)
	for rows.Next() {
		var row OrderSummaryDB
		err := rows.Scan(
			&row.ID,
			&row.SubCategoryName,
			&row.Session,
			&row.TotalAmount,
			&row.WorkerName,
			&row.StatusCode,
			&row.StatusLabel,
			&row.OrderDate,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		summaries = append(summaries, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	return ToSummaryDomainList(summaries)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
