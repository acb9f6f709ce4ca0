// Package metrics exposes the Prometheus collectors owned by this service.
// Request-level metrics come from echoprometheus; the collectors here track
// domain outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics interface {
	IncSepaExport(status string)
	ObserveSepaExportTransactions(count int)
}

type metrics struct {
	sepaExportTotal        *prometheus.CounterVec
	sepaExportTransactions prometheus.Histogram
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	factory := promauto.With(reg)

	return &metrics{
		sepaExportTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sepa_export_total",
			Help: "Number of SEPA export requests by outcome status.",
		}, []string{"status"}),
		sepaExportTransactions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sepa_export_transactions",
			Help:    "Number of transactions per generated payment instruction.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
	}
}

func (m *metrics) IncSepaExport(status string) {
	m.sepaExportTotal.WithLabelValues(status).Inc()
}

func (m *metrics) ObserveSepaExportTransactions(count int) {
	m.sepaExportTransactions.Observe(float64(count))
}
