package order_status_get

import (
	"net/http"

	"booking/internal/generated/dto"
	"booking/internal/handlers/rest/requester"
	"booking/internal/handlers/rest/response"

	"github.com/gorilla/mux"
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

	orderID := mux.Vars(r)["id"]
	event, err := h.service.OrderStatus(r.Context(), orderID, customerID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.OrderStatusResponse{
		OrderID:    orderID,
		Status:     event.Status.String(),
		Label:      event.Label,
		RecordedAt: event.RecordedAt,
	})
}
