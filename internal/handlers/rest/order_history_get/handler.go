package order_history_get

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
	history, err := h.service.StatusHistory(r.Context(), orderID, customerID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	events := make([]dto.StatusEvent, 0, len(history))
	for _, event := range history {
		events = append(events, dto.StatusEvent{
			Seq:        event.Seq,
			Status:     event.Status.String(),
			Label:      event.Label,
			RecordedAt: event.RecordedAt,
		})
	}

	response.JSON(w, h.log, http.StatusOK, dto.OrderHistoryResponse{
		OrderID: orderID,
		Events:  events,
	})
}
