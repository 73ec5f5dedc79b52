// Package telemetry collects run counters on a private Prometheus
// registry. The tool has no network surface, so nothing is exposed over
// HTTP; the engine gathers the registry into the end-of-run summary log.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	registry *prometheus.Registry

	DocumentsRead    prometheus.Counter
	DocumentsWritten prometheus.Counter
	BytesRead        prometheus.Counter
	BytesWritten     prometheus.Counter
	RewriteMatches   *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		DocumentsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fixerrors",
			Name:      "documents_read_total",
			Help:      "Documents loaded from the source adapter.",
		}),
		DocumentsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fixerrors",
			Name:      "documents_written_total",
			Help:      "Documents confirmed written by a sink receipt.",
		}),
		BytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fixerrors",
			Name:      "bytes_read_total",
			Help:      "Bytes loaded from the source adapter.",
		}),
		BytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fixerrors",
			Name:      "bytes_written_total",
			Help:      "Bytes confirmed written by a sink receipt.",
		}),
		RewriteMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fixerrors",
			Name:      "rewrite_matches_total",
			Help:      "Call sites rewritten, per enum variant.",
		}, []string{"variant"}),
	}
	c.registry.MustRegister(
		c.DocumentsRead, c.DocumentsWritten,
		c.BytesRead, c.BytesWritten,
		c.RewriteMatches,
	)
	return c
}

// Snapshot gathers the registry into a flat name -> value map. Labelled
// counters fold their labels into the key, e.g.
// fixerrors_rewrite_matches_total{variant=InvalidData}.
func (c *Collector) Snapshot() (map[string]float64, error) {
	mfs, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(mfs))
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			out[key] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}
