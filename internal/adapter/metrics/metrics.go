package metrics

import (
	"net/http"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storykiosk"

type Metrics struct {
	ordersCreated *prometheus.CounterVec
	transitions   *prometheus.CounterVec
	confirmations *prometheus.CounterVec

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers all collectors in reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders created per catalog item.",
		}, []string{"item"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order state transitions.",
		}, []string{"from", "to"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmations_total",
			Help:      "Confirmation events by channel and outcome.",
		}, []string{"source", "outcome"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 20000},
		}, []string{"handler"}),
		gatherer: reg,
	}
	reg.MustRegister(m.ordersCreated, m.transitions, m.confirmations, m.Requests, m.LatencyMS)
	return m
}

func (m *Metrics) OrderCreated(itemID string) {
	m.ordersCreated.WithLabelValues(itemID).Inc()
}

func (m *Metrics) OrderTransitioned(from, to domain.OrderState) {
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *Metrics) ConfirmationReceived(source domain.ConfirmationSource, outcome string) {
	m.confirmations.WithLabelValues(string(source), outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
