package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	currencyPrefix  = "Rp"
	orderDateLayout = "02/01/2006"
)

// ParseAmount нормализует сумму вида "Rp 1,250,000.50" в десятичное число.
// Запятая разделяет тысячи, точка дробную часть.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimPrefix(s, currencyPrefix))
	if s == "" {
		return decimal.Zero, ErrMalformedAmount
	}
	s, ok := stripThousands(s)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: misplaced thousands separator in %q", ErrMalformedAmount, text)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, text)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative %q", ErrMalformedAmount, text)
	}
	return amount, nil
}

// stripThousands убирает запятые из целой части. Каждая группа после запятой
// ровно из трёх цифр, первая от одной до трёх.
func stripThousands(s string) (string, bool) {
	integer, fraction, hasFraction := strings.Cut(s, ".")
	if strings.Contains(fraction, ",") {
		return "", false
	}
	if !strings.Contains(integer, ",") {
		return s, true
	}

	sign := ""
	if strings.HasPrefix(integer, "-") || strings.HasPrefix(integer, "+") {
		sign, integer = integer[:1], integer[1:]
	}

	groups := strings.Split(integer, ",")
	for i, group := range groups {
		if !isDigits(group) {
			return "", false
		}
		if i == 0 && len(group) > 3 {
			return "", false
		}
		if i > 0 && len(group) != 3 {
			return "", false
		}
	}

	result := sign + strings.Join(groups, "")
	if hasFraction {
		result += "." + fraction
	}
	return result, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseOrderDate разбирает дату DD/MM/YYYY в часовом поясе loc.
func ParseOrderDate(text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	date, err := time.ParseInLocation(orderDateLayout, strings.TrimSpace(text), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	return date, nil
}
