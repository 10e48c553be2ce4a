package order_quote_post

import (
	"encoding/json"
	"net/http"

	"booking/internal/generated/dto"
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
	var request dto.QuoteRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	quote, err := h.service.Quote(r.Context(), request.Session, request.DiscountCode)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	res := dto.QuoteResponse{
		Success:      true,
		Session:      quote.Session,
		BasePrice:    quote.BasePrice.String(),
		Discount:     quote.Discount.String(),
		TotalPayment: quote.Total.String(),
	}
	if quote.DiscountRule != nil {
		res.DiscountCode = &quote.DiscountRule.Code
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
