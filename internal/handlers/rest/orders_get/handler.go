package orders_get

import (
	"net/http"

	"booking/internal/entities"
	"booking/internal/generated/dto"
	"booking/internal/handlers/rest/requester"
	"booking/internal/handlers/rest/response"
)

const orderDateLayout = "02/01/2006"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID, err := requester.FromRequest(r)
	if err != nil {
		response.Message(w, h.log, http.StatusUnauthorized, err.Error())
		return
	}

	filter := entities.OrderFilter{
		CustomerID:    customerID,
		SubCategoryID: queryParam(r, "subcategory"),
		Search:        queryParam(r, "q"),
	}
	if status := queryParam(r, "status"); status != nil {
		statusType := entities.OrderStatusType(*status)
		filter.Status = &statusType
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	res := dto.OrderListResponse{
		Orders: make([]dto.OrderSummary, 0, len(orders)),
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderSummary{
			OrderID:      o.ID,
			SubCategory:  o.SubCategoryName,
			Session:      o.Session,
			TotalPayment: o.TotalAmount.String(),
			WorkerName:   o.WorkerName,
			Status:       o.Status.String(),
			StatusLabel:  o.StatusLabel,
			OrderDate:    o.OrderDate.Format(orderDateLayout),
		})
	}

	response.JSON(w, h.log, http.StatusOK, res)
}

// queryParam nil, если параметра нет или он пустой
func queryParam(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}
