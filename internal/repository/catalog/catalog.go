package catalog

import (
	"context"
	"errors"
	"fmt"

	"booking/internal/entities"
	"booking/internal/service/catalog"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetSession(ctx context.Context, session string) (*entities.ServiceSession, error) {
	query := `
		SELECT session, sub_category_id, price::text
		FROM service_sessions
		WHERE session = $1`

	var sessionDB ServiceSessionDB
	err := r.querier.QueryRow(ctx, query, session).Scan(
		&sessionDB.Session,
		&sessionDB.SubCategoryID,
		&sessionDB.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get session error: %w", err)
	}

	return ToSessionDomain(&sessionDB)
}

func (r *Repository) GetPaymentMethod(ctx context.Context, id string) (*entities.PaymentMethod, error) {
	query := `SELECT id, name FROM payment_methods WHERE id = $1`

	var methodDB PaymentMethodDB
	err := r.querier.QueryRow(ctx, query, id).Scan(&methodDB.ID, &methodDB.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get payment method error: %w", err)
	}

	return &entities.PaymentMethod{ID: methodDB.ID, Name: methodDB.Name}, nil
}

func (r *Repository) GetActiveDiscount(ctx context.Context, code string) (*entities.DiscountRule, error) {
	query := `
		SELECT code, kind, value::text
		FROM discounts
		WHERE code = $1 AND active`

	var discountDB DiscountDB
	err := r.querier.QueryRow(ctx, query, code).Scan(
		&discountDB.Code,
		&discountDB.Kind,
		&discountDB.Value,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrDiscountNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get discount error: %w", err)
	}

	return ToDiscountDomain(&discountDB)
}
