package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"booking/internal/handlers/rest/response"
	"booking/pkg/logger"
)

// Middleware ограничивает время обработки запроса. Если обработчик вышел по дедлайну
// и ничего не записал, клиент получает 504.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &trackingWriter{ResponseWriter: w}
			next.ServeHTTP(tw, r.WithContext(ctx))

			if tw.wroteHeader || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			log.With(
				logger.NewField("path", r.URL.Path),
				logger.NewField("method", r.Method),
				logger.NewField("timeout", timeout.String()),
			).Warn("request timed out")
			response.Message(w, log, http.StatusGatewayTimeout, "request timed out")
		})
	}
}

type trackingWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *trackingWriter) WriteHeader(code int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
