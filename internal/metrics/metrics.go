package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the bot's counters on a private registry. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	streamMessages prometheus.Counter
	streamErrors   *prometheus.CounterVec
	decisions      *prometheus.CounterVec
	decisionErrors *prometheus.CounterVec
	orders         *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		streamMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trader_stream_messages_total",
			Help: "Mark price frames received.",
		}),
		streamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trader_stream_errors_total",
			Help: "Per-message chain failures by error kind.",
		}, []string{"kind"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trader_decisions_total",
			Help: "Oracle outcomes by signal.",
		}, []string{"signal"}),
		decisionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trader_decision_errors_total",
			Help: "Oracle failures by error kind.",
		}, []string{"kind"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trader_orders_total",
			Help: "Order submissions by market and outcome.",
		}, []string{"market", "outcome"}),
	}
	m.registry.MustRegister(m.streamMessages, m.streamErrors, m.decisions, m.decisionErrors, m.orders)
	return m
}

func (m *Metrics) StreamMessage() {
	if m == nil {
		return
	}
	m.streamMessages.Inc()
}

func (m *Metrics) StreamError(kind string) {
	if m == nil {
		return
	}
	m.streamErrors.WithLabelValues(kind).Inc()
}

// Decision records a BUY or SELL answer.
func (m *Metrics) Decision(signal string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(signal).Inc()
}

// DecisionError records a failed oracle call by error kind.
func (m *Metrics) DecisionError(kind string) {
	if m == nil {
		return
	}
	m.decisionErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) Order(market, outcome string) {
	if m == nil {
		return
	}
	m.orders.WithLabelValues(market, outcome).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
