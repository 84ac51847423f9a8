package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the application's Prometheus collectors behind a
// private registry so the /metrics endpoint only exposes what we own.
type Registry struct {
	reg             *prometheus.Registry
	HTTPRequests    *prometheus.CounterVec
	HTTPDurationSec prometheus.Histogram
	CartMutations   prometheus.Counter
	OrderHandoffs   prometheus.Counter
}

// NewRegistry creates the registry and registers all collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_http_requests_total",
		Help: "HTTP requests by method and status code.",
	}, []string{"method", "status"})
	httpDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "menu_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	cartMutations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menu_cart_mutations_total",
		Help: "Cart engine mutations applied.",
	})
	orderHandoffs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menu_order_handoffs_total",
		Help: "Order messages built for WhatsApp handoff.",
	})

	r.MustRegister(httpRequests, httpDuration, cartMutations, orderHandoffs)

	return &Registry{
		reg:             r,
		HTTPRequests:    httpRequests,
		HTTPDurationSec: httpDuration,
		CartMutations:   cartMutations,
		OrderHandoffs:   orderHandoffs,
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
