// Package metrics exposes interaction counters in the Prometheus text format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "metaboschema"

// Results label the outcome of a copy or an export.
const (
	ResultOK     = "ok"
	ResultManual = "manual"
	ResultFailed = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	regionClicks    *prometheus.CounterVec
	languageToggles *prometheus.CounterVec
	copies          *prometheus.CounterVec
	exports         *prometheus.CounterVec
	sessions        prometheus.Gauge
}

// New creates the collectors on a private registry, with the Go runtime collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		regionClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "region_clicks_total",
			Help:      "Clicks on diagram regions.",
		}, []string{"region"}),
		languageToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "language_toggles_total",
			Help:      "Language switches, by the language switched to.",
		}, []string{"language"}),
		copies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notation_copies_total",
			Help:      "Copy requests of the molecule notation.",
		}, []string{"result"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_exports_total",
			Help:      "Exports of the reference document.",
		}, []string{"result"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Sessions currently held in memory.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.regionClicks,
		m.languageToggles,
		m.copies,
		m.exports,
		m.sessions,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RegionClicked(region string) {
	m.regionClicks.WithLabelValues(region).Inc()
}

func (m *Metrics) LanguageToggled(language string) {
	m.languageToggles.WithLabelValues(language).Inc()
}

func (m *Metrics) NotationCopied(result string) {
	m.copies.WithLabelValues(result).Inc()
}

func (m *Metrics) ReferenceExported(result string) {
	m.exports.WithLabelValues(result).Inc()
}

func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}

