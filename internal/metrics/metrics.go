// Package metrics provides Prometheus instrumentation for the polling loop.
//
// Metrics exposed:
//   - bgcheck_readings_total: Counter of readings taken, by severity
//   - bgcheck_fetch_errors_total: Counter of failed fetches that were recorded as missing
//   - bgcheck_alerts_total: Counter of critical alerts, by reason
//   - bgcheck_glucose_mmol_l: Gauge of the last numeric reading
//   - bgcheck_consecutive_missing: Gauge of back-to-back missing readings
//   - bgcheck_fetch_duration_seconds: Histogram of reading source latency
//
// Every method is safe to call on a nil *Metrics so callers can run without
// instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/five82/bgcheck/internal/glucose"
)

// Alert reasons.
const (
	ReasonBadReading = "bad_reading"
	ReasonDropped    = "dropped_readings"
)

type Metrics struct {
	Registry *prometheus.Registry

	ReadingsTotal      *prometheus.CounterVec
	FetchErrors        prometheus.Counter
	AlertsTotal        *prometheus.CounterVec
	Glucose            prometheus.Gauge
	ConsecutiveMissing prometheus.Gauge
	FetchDuration      prometheus.Histogram
}

// New registers the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,

		ReadingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bgcheck_readings_total",
			Help: "Total number of readings taken by severity",
		}, []string{"severity"}),

		FetchErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "bgcheck_fetch_errors_total",
			Help: "Total number of failed fetches recorded as missing readings",
		}),

		AlertsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bgcheck_alerts_total",
			Help: "Total number of critical alerts by reason",
		}, []string{"reason"}),

		Glucose: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bgcheck_glucose_mmol_l",
			Help: "Last numeric glucose reading in mmol/L",
		}),

		ConsecutiveMissing: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bgcheck_consecutive_missing",
			Help: "Number of back-to-back missing readings",
		}),

		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bgcheck_fetch_duration_seconds",
			Help:    "Duration of reading source fetches",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) RecordReading(r glucose.Reading) {
	if m == nil {
		return
	}
	m.ReadingsTotal.WithLabelValues(glucose.Classify(r).String()).Inc()
	if v, ok := r.Value(); ok {
		m.Glucose.Set(v)
	}
}

func (m *Metrics) RecordFetchError() {
	if m == nil {
		return
	}
	m.FetchErrors.Inc()
}

func (m *Metrics) RecordAlert(reason string) {
	if m == nil {
		return
	}
	m.AlertsTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) SetConsecutiveMissing(n int) {
	if m == nil {
		return
	}
	m.ConsecutiveMissing.Set(float64(n))
}

func (m *Metrics) ObserveFetch(seconds float64) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(seconds)
}
