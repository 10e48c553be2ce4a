package order

import "time"

type OrderDB struct {
	ID              string
	OrderDate       time.Time
	WorkDate        time.Time
	WorkTime        time.Time
	TotalAmount     string
	CustomerID      string
	WorkerID        *string
	SubCategoryID   string
	Session         string
	DiscountCode    *string
	PaymentMethodID string
}

type StatusEventDB struct {
	Seq        int64
	OrderID    string
	Code       string
	Label      string
	RecordedAt time.Time
}

type OrderSummaryDB struct {
	ID              string
	SubCategoryName string
	Session         string
	TotalAmount     string
	WorkerName      *string
	StatusCode      string
	StatusLabel     string
	OrderDate       time.Time
}
