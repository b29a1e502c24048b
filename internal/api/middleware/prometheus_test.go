package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/snowseeker/internal/api/middleware"
	"github.com/dom/snowseeker/internal/metrics"
	"github.com/go-chi/chi/v5"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheus_RecordsStatusByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Prometheus)
	r.Get("/reports/{id}/ws", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})

	tests := []struct {
		name     string
		upgrade  bool
		wantCode string
	}{
		// A plain request is measured even though the path ends in /ws.
		{name: "plain request", wantCode: "410"},
		{name: "websocket upgrade", upgrade: true, wantCode: "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.TotalRequests.WithLabelValues("/reports/{id}/ws", tt.wantCode, http.MethodGet)
			before := promtestutil.ToFloat64(counter)

			req := httptest.NewRequest(http.MethodGet, "/reports/42/ws", nil)
			if tt.upgrade {
				req.Header.Set("Connection", "Upgrade")
				req.Header.Set("Upgrade", "websocket")
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, before+1, promtestutil.ToFloat64(counter))
		})
	}
}
