package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"hatch-dbh/internal/hatch"
)

// Metrics holds the Prometheus collectors for prediction runs. Each instance
// owns its registry so a CLI run can export it as a node_exporter textfile.
type Metrics struct {
	Registry *prometheus.Registry

	Predictions     *prometheus.CounterVec   // labels: species, outcome={ok,<error kind>}
	DBH             *prometheus.HistogramVec // labels: species
	Confidence      *prometheus.HistogramVec // labels: species
	BatchSize       prometheus.Histogram
	LastRunFailures prometheus.Gauge
}

// NewMetrics creates and registers all prediction metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hatch_dbh",
			Name:      "predictions_total",
			Help:      "Predictions attempted, by species and outcome.",
		}, []string{"species", "outcome"}),
		DBH: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hatch_dbh",
			Name:      "predicted_days_before_hatching",
			Help:      "Distribution of predicted days before hatching.",
			Buckets:   prometheus.LinearBuckets(0, 5, 8), // 0..35 days
		}, []string{"species"}),
		Confidence: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hatch_dbh",
			Name:      "prediction_confidence",
			Help:      "Distribution of prediction confidence scores.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}, []string{"species"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hatch_dbh",
			Name:      "batch_size",
			Help:      "Number of measurements per batch run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		LastRunFailures: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hatch_dbh",
			Name:      "last_run_failures",
			Help:      "Failed measurements in the most recent run.",
		}),
	}

	m.Registry.MustRegister(
		m.Predictions,
		m.DBH,
		m.Confidence,
		m.BatchSize,
		m.LastRunFailures,
	)
	return m
}

// Observe records a single outcome.
func (m *Metrics) Observe(o hatch.Outcome) {
	species := string(o.Input.Species)
	if o.Err != nil {
		outcome := string(hatch.KindOf(o.Err))
		if outcome == "" {
			outcome = "error"
		}
		m.Predictions.WithLabelValues(species, outcome).Inc()
		return
	}
	m.Predictions.WithLabelValues(species, "ok").Inc()
	m.DBH.WithLabelValues(species).Observe(o.Prediction.DBH)
	m.Confidence.WithLabelValues(species).Observe(o.Prediction.Confidence)
}

// ObserveRun records every outcome of a run plus its size and failure count.
func (m *Metrics) ObserveRun(outcomes []hatch.Outcome) {
	failures := 0
	for _, o := range outcomes {
		m.Observe(o)
		if o.Err != nil {
			failures++
		}
	}
	m.BatchSize.Observe(float64(len(outcomes)))
	m.LastRunFailures.Set(float64(failures))
}

// WriteTextfile exports the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
