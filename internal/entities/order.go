package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order заказ клиента на сессию услуги. После создания меняются только
// исполнитель (вне этого сервиса) и статус, который живёт в журнале событий.
type Order struct {
	ID              string
	OrderDate       time.Time
	WorkDate        time.Time
	WorkTime        time.Time
	TotalAmount     decimal.Decimal
	CustomerID      string
	WorkerID        *string
	SubCategoryID   string
	Session         string
	DiscountCode    *string
	PaymentMethodID string
}

// OrderCreate входные данные для оформления заказа, как их прислал клиент.
type OrderCreate struct {
	CustomerID      string
	Session         string
	OrderDate       string // DD/MM/YYYY
	DiscountCode    *string
	PaymentMethodID string
	// ExpectedTotal сумма, которую клиент видел на экране ("Rp 100,000"), опционально
	ExpectedTotal *string
}

// OrderSummary строка списка заказов клиента.
type OrderSummary struct {
	ID              string
	SubCategoryName string
	Session         string
	TotalAmount     decimal.Decimal
	WorkerName      *string
	Status          OrderStatusType
	StatusLabel     string
	OrderDate       time.Time
}

type OrderFilter struct {
	CustomerID    string
	SubCategoryID *string
	Status        *OrderStatusType
	Search        *string
}

// Quote предварительный расчёт стоимости без создания заказа.
type Quote struct {
	Session      string
	BasePrice    decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
	DiscountRule *DiscountRule
}
