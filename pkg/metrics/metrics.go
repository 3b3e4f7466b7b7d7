// Package metrics exposes Prometheus counters describing what nodetrace emitted.
//
// A nil *Collector is valid and records nothing, so components can hold one unconditionally.
package metrics

import (
	"time"

	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Sink labels.
const (
	SinkConsole = "console"
	SinkFile    = "file"
)

// Node outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector groups the nodetrace collectors.
type Collector struct {
	events       *prometheus.CounterVec
	lines        *prometheus.CounterVec
	sinkErrors   *prometheus.CounterVec
	nodeDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodetrace_events_total",
				Help: "Total number of trace events emitted, by kind",
			},
			[]string{"kind"},
		),
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodetrace_lines_written_total",
				Help: "Total number of trace lines written, by sink",
			},
			[]string{"sink"},
		),
		sinkErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodetrace_sink_errors_total",
				Help: "Failures writing to a sink, by sink",
			},
			[]string{"sink"},
		),
		nodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "nodetrace_node_duration_seconds",
				Help: "Duration of wrapped node executions",
			},
			[]string{"node", "outcome"},
		),
	}

	for _, col := range []prometheus.Collector{c.events, c.lines, c.sinkErrors, c.nodeDuration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// EventEmitted counts one emitted event.
func (c *Collector) EventEmitted(kind domain.EventKind) {
	if c == nil {
		return
	}
	c.events.WithLabelValues(string(kind)).Inc()
}

// LinesWritten counts n lines written to sink.
func (c *Collector) LinesWritten(sink string, n int) {
	if c == nil {
		return
	}
	c.lines.WithLabelValues(sink).Add(float64(n))
}

// SinkError counts one failed write or open on sink.
func (c *Collector) SinkError(sink string) {
	if c == nil {
		return
	}
	c.sinkErrors.WithLabelValues(sink).Inc()
}

// ObserveNode records the duration of one wrapped node call.
func (c *Collector) ObserveNode(node string, d time.Duration, err error) {
	if c == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.nodeDuration.WithLabelValues(node, outcome).Observe(d.Seconds())
}
