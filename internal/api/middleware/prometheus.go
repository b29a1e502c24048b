package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dom/snowseeker/internal/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

// Prometheus records request count and latency per route pattern, so
// /resorts/aspen and /resorts/zermatt share one series.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		statusCode := http.StatusOK

		if websocket.IsWebSocketUpgrade(r) {
			// hijacked connection, status is meaningless
			next.ServeHTTP(w, r)
			statusCode = http.StatusSwitchingProtocols
		} else {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			if ww.Status() != 0 {
				statusCode = ww.Status()
			}
		}

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		elapsedSeconds := time.Since(now).Seconds()
		code := strconv.Itoa(statusCode)

		metrics.TotalRequests.WithLabelValues(path, code, r.Method).Inc()
		metrics.HttpDuration.WithLabelValues(path, code, r.Method).Observe(elapsedSeconds)
	})
}
