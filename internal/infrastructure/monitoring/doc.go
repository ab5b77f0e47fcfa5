/*
Package monitoring collects Prometheus metrics for a host run.

# Overview

Each run gets its own registry. The host has no HTTP surface, so metrics
are exported by writing a text file at exit, suitable for the node
exporter textfile collector.

# Metrics

  - done_scripts_compiled_total{result}
  - done_scripts_run_total{result}
  - done_stage_duration_seconds{stage,script}
  - done_native_calls_total{binding}
  - done_run_duration_seconds

# Usage

	metrics := monitoring.NewMetrics()
	eng := engine.New(engine.Options{Recorder: metrics})
	...
	metrics.Finish()
	if err := metrics.WriteTextfile("/var/lib/node_exporter/done.prom"); err != nil {
		logger.Warn("Metrics not written", zap.Error(err))
	}
*/
package monitoring
