package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"booking/internal/entities"
	"booking/internal/generated/dto"
	"booking/pkg/logger"
)

const (
	internalErrorMessage = "internal server error"
	timeoutMessage       = "request timed out"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// StatusFromError HTTP-код по виду ошибки. Неизвестные ошибки считаются внутренними.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrInvalidState),
		errors.Is(err, entities.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error пишет {"success": false, "error": ...}. Текст внутренних ошибок наружу не отдаётся.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusFromError(err)

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		message = internalErrorMessage
	case http.StatusGatewayTimeout:
		message = timeoutMessage
	}

	JSON(w, log, status, dto.ErrorResponse{
		Success: false,
		Error:   &message,
	})
}

// Message ответ об ошибке без обращения к сервису: невалидный JSON, нет клиента и т.п.
func Message(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{
		Success: false,
		Error:   &message,
	})
}
