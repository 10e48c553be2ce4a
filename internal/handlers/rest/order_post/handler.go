package order_post

import (
	"encoding/json"
	"net/http"

	"booking/internal/entities"
	"booking/internal/generated/dto"
	"booking/internal/handlers/rest/requester"
	"booking/internal/handlers/rest/response"
)

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

	var request dto.OrderCreateRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), entities.OrderCreate{
		CustomerID:      customerID,
		Session:         request.Session,
		OrderDate:       request.OrderDate,
		DiscountCode:    request.DiscountCode,
		PaymentMethodID: request.PaymentMethodID,
		ExpectedTotal:   request.TotalPayment,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.OrderCreateResponse{
		Success:      true,
		OrderID:      order.ID,
		TotalPayment: order.TotalAmount.String(),
	})
}
