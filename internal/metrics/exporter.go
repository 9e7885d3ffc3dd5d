package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "authlog"

// Exporter publishes a Metrics snapshot as prometheus counters labelled by
// level and logger variant.
type Exporter struct {
	metrics    *Metrics
	variant    string
	emitted    *prometheus.Desc
	suppressed *prometheus.Desc
}

func NewExporter(m *Metrics, variant string) *Exporter {
	return &Exporter{
		metrics: m,
		variant: variant,
		emitted: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "messages", "emitted_total"),
			"Log calls that passed the threshold.",
			[]string{"level", "variant"}, nil,
		),
		suppressed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "messages", "suppressed_total"),
			"Log calls dropped by the threshold.",
			[]string{"level", "variant"}, nil,
		),
	}
}

func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.emitted
	ch <- e.suppressed
}

func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	snap := e.metrics.Snapshot()

	levels := make([]string, 0, len(snap.Levels))
	for level := range snap.Levels {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	for _, level := range levels {
		lm := snap.Levels[level]
		ch <- prometheus.MustNewConstMetric(e.emitted, prometheus.CounterValue, float64(lm.Emitted), level, e.variant)
		ch <- prometheus.MustNewConstMetric(e.suppressed, prometheus.CounterValue, float64(lm.Suppressed), level, e.variant)
	}
}
