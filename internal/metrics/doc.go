// Package metrics counts log calls that pass or fail a logger's threshold.
//
// A *Metrics is handed to a logger as its recorder; every gated call bumps
// the emitted or suppressed count for the call's level. Recording never
// changes what a logger writes.
//
// Example usage:
//
//	m := metrics.NewMetrics()
//	log := logger.NewStandard(logger.WithRecorder(m))
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewExporter(m, "standard"))
//
// The exporter publishes authlog_messages_emitted_total and
// authlog_messages_suppressed_total, labelled by level and variant.
package metrics
