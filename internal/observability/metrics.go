package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "brandcost"

// Metrics holds the Prometheus collectors of the calculator.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	quotes     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	reports    prometheus.Counter
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "quotes_total",
			Help:      "Quotes computed, by vendor, tier and billing cycle.",
		}, []string{"vendor", "tier", "billing_cycle"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejections_total",
			Help:      "Requests rejected before pricing, by reason.",
		}, []string{"reason"}),
		reports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reports_total",
			Help:      "Text reports rendered.",
		}),
	}

	m.registry.MustRegister(m.quotes, m.rejections, m.reports)

	return m
}

// ObserveQuote counts a computed quote.
func (m *Metrics) ObserveQuote(vendor, tier, cycle string) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(vendor, tier, cycle).Inc()
}

// ObserveRejection counts a rejected request.
func (m *Metrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(reason).Inc()
}

// ObserveReport counts a rendered report.
func (m *Metrics) ObserveReport() {
	if m == nil {
		return
	}
	m.reports.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
