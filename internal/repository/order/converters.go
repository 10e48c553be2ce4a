package order

import (
	"booking/internal/entities"
	"booking/internal/repository"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	total, err := repository.ParseNumeric(o.TotalAmount)
	if err != nil {
		return nil, err
	}
	return &entities.Order{
		ID:              o.ID,
		OrderDate:       o.OrderDate,
		WorkDate:        o.WorkDate,
		WorkTime:        o.WorkTime,
		TotalAmount:     total,
		CustomerID:      o.CustomerID,
		WorkerID:        o.WorkerID,
		SubCategoryID:   o.SubCategoryID,
		Session:         o.Session,
		DiscountCode:    o.DiscountCode,
		PaymentMethodID: o.PaymentMethodID,
	}, nil
}

func ToStatusEventDomain(e *StatusEventDB) *entities.StatusEvent {
	return &entities.StatusEvent{
		Seq:        e.Seq,
		OrderID:    e.OrderID,
		Status:     entities.OrderStatusType(e.Code),
		Label:      e.Label,
		RecordedAt: e.RecordedAt,
	}
}

func ToSummaryDomainList(rows []OrderSummaryDB) ([]entities.OrderSummary, error) {
	summaries := make([]entities.OrderSummary, 0, len(rows))
	for _, row := range rows {
		total, err := repository.ParseNumeric(row.TotalAmount)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, entities.OrderSummary{
			ID:              row.ID,
			SubCategoryName: row.SubCategoryName,
			Session:         row.Session,
			TotalAmount:     total,
			WorkerName:      row.WorkerName,
			Status:          entities.OrderStatusType(row.StatusCode),
			StatusLabel:     row.StatusLabel,
			OrderDate:       row.OrderDate,
		})
	}
	return summaries, nil
}
