package entities

import "github.com/shopspring/decimal"

type ServiceSession struct {
	Session       string
	SubCategoryID string
	BasePrice     decimal.Decimal
}

type PaymentMethod struct {
	ID   string
	Name string
}

type DiscountKind string

const (
	DiscountFlat       DiscountKind = "flat"
	DiscountPercentage DiscountKind = "percentage"
)

func (k DiscountKind) String() string {
	return string(k)
}

// DiscountRule скидка по коду. Для flat Value это сумма в рупиях,
// для percentage это процент от базовой цены.
type DiscountRule struct {
	Code  string
	Kind  DiscountKind
	Value decimal.Decimal
}
