// Package metrics exposes the Prometheus collectors shared by the services.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

type Metrics struct {
	registry       *prometheus.Registry
	enumRejections *prometheus.CounterVec
	outboxEvents   *prometheus.CounterVec
}

// New builds collectors on a private registry so several instances can
// coexist in one process (tests). Every series carries a constant service
// label instead of a per-service name prefix.
func New(service string) *Metrics {
	if service == "" {
		service = "store"
	}
	labels := prometheus.Labels{"service": service}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		enumRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "enum_rejections_total",
				Help:        "Inputs rejected because they did not name a member of a closed value set.",
				ConstLabels: labels,
			},
			[]string{"type", "source"},
		),
		outboxEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem:   "outbox",
				Name:        "events_total",
				Help:        "Outbox events handled by the relay, by result.",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
	}
}

// ObserveRejection counts err when it is an invalid enumeration value and
// reports whether it was one.
func (m *Metrics) ObserveRejection(err error, source string) bool {
	typ, ok := enumeration.TypeOf(err)
	if !ok {
		return false
	}
	if m != nil {
		m.enumRejections.WithLabelValues(typ, source).Inc()
	}
	return true
}

func (m *Metrics) OutboxSent(n int) {
	if m != nil {
		m.outboxEvents.WithLabelValues("sent").Add(float64(n))
	}
}

func (m *Metrics) OutboxFailed() {
	if m != nil {
		m.outboxEvents.WithLabelValues("failed").Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
