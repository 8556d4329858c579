package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	m "github.com/mouse-blink/splicer/internal/model"
)

const metricsNamespace = "splicer"

// MetricsWriter exports the counters of a finished session in the Prometheus
// textfile format, for node_exporter's textfile collector.
type MetricsWriter interface {
	Record(report m.SessionReport)
	WriteFile(path m.Path) error
	Registry() *prometheus.Registry
}

type textfileMetrics struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	backups  prometheus.Gauge
	written  prometheus.Gauge
	success  *prometheus.GaugeVec
}

// NewMetricsWriter constructs a MetricsWriter with its own registry so that
// repeated sessions in one process never collide on registration.
func NewMetricsWriter() MetricsWriter {
	reg := prometheus.NewRegistry()

	mw := &textfileMetrics{
		registry: reg,
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "outcomes_total",
			Help:      "Patch outcomes by kind.",
		}, []string{"kind"}),
		backups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "backups",
			Help:      "Backups taken by the last session.",
		}),
		written: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "files_written",
			Help:      "Files written by the last session.",
		}),
		success: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_session_success",
			Help:      "1 when the last session had no failed outcomes.",
		}, []string{"session"}),
	}

	reg.MustRegister(mw.outcomes, mw.backups, mw.written, mw.success)

	return mw
}

func (mw *textfileMetrics) Registry() *prometheus.Registry {
	return mw.registry
}

func (mw *textfileMetrics) Record(report m.SessionReport) {
	for _, outcome := range report.Outcomes {
		mw.outcomes.WithLabelValues(string(outcome.Kind)).Inc()
	}

	mw.backups.Set(float64(len(report.Backups)))
	mw.written.Set(float64(len(report.Written)))

	mw.success.Reset()

	value := 0.0
	if report.Success() {
		value = 1
	}

	mw.success.WithLabelValues(report.Name).Set(value)
}

// WriteFile renders the registry to path. WriteToTextfile writes a temp file
// and renames it, so collectors never read a partial file.
func (mw *textfileMetrics) WriteFile(path m.Path) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("failed to create metrics dir: %w", err)
	}

	if err := prometheus.WriteToTextfile(string(path), mw.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}
