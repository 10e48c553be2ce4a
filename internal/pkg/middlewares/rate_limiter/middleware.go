package rate_limiter

import (
	"net/http"
	"strconv"

	"booking/internal/handlers/rest/response"
	"booking/pkg/logger"

	"github.com/gorilla/mux"
)

const retryAfterSeconds = "1"

// Middleware отклоняет запрос с 429, если в limiter кончились токены.
// qps уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				RateLimitAllowedTotal.Inc()
				next.ServeHTTP(w, r)
				return
			}

			route := routeTemplate(r)
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", retryAfterSeconds)
			response.Message(w, log, http.StatusTooManyRequests, "rate limit exceeded, try again later")
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}
	return template
}
