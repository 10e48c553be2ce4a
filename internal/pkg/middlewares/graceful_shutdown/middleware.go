package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"booking/internal/handlers/rest/response"
)

const retryAfterSeconds = "5"

// Middleware отклоняет новые запросы с 503, как только ongoingCtx отменён и выставлен флаг остановки.
// Клиенту отдаётся обычный конверт ошибки и Retry-After.
func Middleware(log handlerLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Retry-After", retryAfterSeconds)
					w.Header().Set("Connection", "close")
					response.Message(w, log, http.StatusServiceUnavailable, "service is shutting down")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
