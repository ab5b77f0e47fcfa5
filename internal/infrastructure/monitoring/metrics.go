package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of one host run
type Metrics struct {
	Registry *prometheus.Registry

	// Script metrics
	ScriptsCompiled *prometheus.CounterVec
	ScriptsRun      *prometheus.CounterVec
	StageDuration   *prometheus.HistogramVec

	// Native binding metrics
	NativeCalls *prometheus.CounterVec

	// Run metrics
	RunDuration prometheus.Gauge
	startTime   time.Time

	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current counter values for logging and tests
type MetricsSnapshot struct {
	Compiled     int64
	CompileFails int64
	Runs         int64
	RunFails     int64
	NativeCalls  int64
}

// NewMetrics creates a metrics collector with its own registry, so several
// hosts in one process do not collide.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry:  reg,
		startTime: time.Now(),

		ScriptsCompiled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "done_scripts_compiled_total",
				Help: "Total number of script compilations",
			},
			[]string{"result"},
		),
		ScriptsRun: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "done_scripts_run_total",
				Help: "Total number of script executions",
			},
			[]string{"result"},
		),
		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "done_stage_duration_seconds",
				Help:    "Duration of compile and run stages in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"stage", "script"},
		),
		NativeCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "done_native_calls_total",
				Help: "Total number of native binding calls",
			},
			[]string{"binding"},
		),
		RunDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "done_run_duration_seconds",
				Help: "Wall time of the host run in seconds",
			},
		),
	}
}

// ObserveCompile records a compilation
func (m *Metrics) ObserveCompile(path string, d time.Duration, err error) {
	m.ScriptsCompiled.WithLabelValues(result(err)).Inc()
	m.StageDuration.WithLabelValues("compile", path).Observe(d.Seconds())

	m.mu.Lock()
	m.snapshot.Compiled++
	if err != nil {
		m.snapshot.CompileFails++
	}
	m.mu.Unlock()
}

// ObserveRun records an execution
func (m *Metrics) ObserveRun(path string, d time.Duration, err error) {
	m.ScriptsRun.WithLabelValues(result(err)).Inc()
	m.StageDuration.WithLabelValues("run", path).Observe(d.Seconds())

	m.mu.Lock()
	m.snapshot.Runs++
	if err != nil {
		m.snapshot.RunFails++
	}
	m.mu.Unlock()
}

// IncNativeCall records a call into a native binding
func (m *Metrics) IncNativeCall(name string) {
	m.NativeCalls.WithLabelValues(name).Inc()

	m.mu.Lock()
	m.snapshot.NativeCalls++
	m.mu.Unlock()
}

// Finish sets the run duration gauge
func (m *Metrics) Finish() {
	m.RunDuration.Set(time.Since(m.startTime).Seconds())
}

// Snapshot returns a copy of the current counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
