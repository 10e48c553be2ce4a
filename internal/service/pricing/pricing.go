package pricing

import (
	"booking/internal/entities"

	"github.com/shopspring/decimal"
)

// CurrencyScale знаков после точки, как у orders.total_amount NUMERIC(12,2).
const CurrencyScale = 2

var hundred = decimal.NewFromInt(100)

// ComputeTotal применяет скидку к базовой цене. Результат всегда в [0, base]
// и округлён до CurrencyScale половиной от нуля, как округляет numeric в PostgreSQL.
func ComputeTotal(base decimal.Decimal, rule *entities.DiscountRule) decimal.Decimal {
	if base.IsNegative() {
		return decimal.Zero
	}
	base = base.Round(CurrencyScale)
	if rule == nil {
		return base
	}

	var total decimal.Decimal
	switch rule.Kind {
	case entities.DiscountFlat:
		total = base.Sub(rule.Value)
	case entities.DiscountPercentage:
		total = base.Sub(base.Mul(rule.Value).Div(hundred))
	default:
		return base
	}

	return clamp(total.Round(CurrencyScale), base)
}

// Discount сколько снято с базовой цены.
func Discount(base decimal.Decimal, rule *entities.DiscountRule) decimal.Decimal {
	return base.Sub(ComputeTotal(base, rule))
}

func clamp(total, base decimal.Decimal) decimal.Decimal {
	if total.IsNegative() {
		return decimal.Zero
	}
	if total.GreaterThan(base) {
		return base
	}
	return total
}
