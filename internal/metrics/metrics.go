package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var FavoritesCount = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "snowseeker_favorites_count",
		Help: "Number of resorts currently marked as favorite.",
	},
)

var FavoritesPersistFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "snowseeker_favorites_persist_failures_total",
		Help: "Favorites writes that failed to reach durable storage.",
	},
)

var FavoritesLoadFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "snowseeker_favorites_load_failures_total",
		Help: "Startups where stored favorites were unreadable and reset to empty.",
	},
)

var CatalogResorts = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "snowseeker_catalog_resorts",
		Help: "Number of resorts in the loaded catalog.",
	},
)

var WSClientCount = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "snowseeker_ws_client_count",
		Help: "Connected websocket clients.",
	},
)

var TotalRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "snowseeker_http_requests_total",
		Help: "Number of http requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "snowseeker_http_request_duration_seconds",
		Help: "Http request latency.",
		Buckets: []float64{
			0.005,
			0.01,
			0.025,
			0.05,
			0.1, // 100 ms
			0.25,
			0.5,
			1,
			2.5,
		},
	},
	[]string{"path", "code", "method"},
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
