package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

const namespace = "errmatrix"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry      *prom.Registry
	stageDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	runDuration   prom.Histogram
	runOutcome    *prom.CounterVec
	exampleExits  *prom.CounterVec
	cells         prom.Gauge
}

// NewPrometheusRecorder constructs and registers the run metrics on reg, or
// on a fresh private registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages",
			Buckets:   prom.ExponentialBuckets(0.01, 4, 8),
		}, []string{"stage"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total generation run duration",
			Buckets:   prom.ExponentialBuckets(0.1, 4, 8),
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Generation runs by final status",
		}, []string{"result"}),
		exampleExits: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "example_exits_total",
			Help:      "Executed examples by error kind, operation and exit code",
		}, []string{"error_kind", "operation", "exit_code"}),
		cells: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "matrix_cells",
			Help:      "Number of cells in the generated matrix",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.runDuration, pr.runOutcome, pr.exampleExits, pr.cells)
	return pr
}

// Registry exposes the registry the metrics live on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(result ResultLabel) {
	p.runOutcome.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncExampleExit(kind, operation string, exitCode int) {
	p.exampleExits.WithLabelValues(kind, operation, strconv.Itoa(exitCode)).Inc()
}

func (p *PrometheusRecorder) SetCells(n int) {
	p.cells.Set(float64(n))
}

// WriteTextfile atomically writes all metrics in text exposition format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write metrics textfile").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
