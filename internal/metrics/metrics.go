// Package metrics holds the prometheus collectors exposed by the API
// server's /metrics endpoint.
package metrics

import (
	"FlowTagger/internal/model"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates the collectors for the API server.
type Metrics struct {
	RunsTotal              prometheus.Counter
	RunFailuresTotal       prometheus.Counter
	RecordsParsedTotal     prometheus.Counter
	LogLinesDroppedTotal   prometheus.Counter
	LookupRowsDroppedTotal prometheus.Counter
	RequestsTotal          *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flowtagger_runs_total",
			Help: "Total tagging runs executed successfully.",
		}),
		RunFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flowtagger_run_failures_total",
			Help: "Total tagging runs that failed at the boundary (unreadable input).",
		}),
		RecordsParsedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flowtagger_records_parsed_total",
			Help: "Total well-formed flow records parsed across runs.",
		}),
		LogLinesDroppedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flowtagger_log_lines_dropped_total",
			Help: "Total malformed flow log lines dropped across runs.",
		}),
		LookupRowsDroppedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flowtagger_lookup_rows_dropped_total",
			Help: "Total malformed lookup CSV rows dropped across runs.",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flowtagger_http_requests_total",
			Help: "Total HTTP requests, by path and status code.",
		}, []string{"path", "code"}),
	}

	reg.MustRegister(
		m.RunsTotal,
		m.RunFailuresTotal,
		m.RecordsParsedTotal,
		m.LogLinesDroppedTotal,
		m.LookupRowsDroppedTotal,
		m.RequestsTotal,
	)
	return m
}

// ObserveRun records the stats of one completed run.
func (m *Metrics) ObserveRun(stats model.Stats) {
	m.RunsTotal.Inc()
	m.RecordsParsedTotal.Add(float64(stats.RecordsParsed))
	m.LogLinesDroppedTotal.Add(float64(stats.LogLinesDropped))
	m.LookupRowsDroppedTotal.Add(float64(stats.LookupRowsDropped))
}
