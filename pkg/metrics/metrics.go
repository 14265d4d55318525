package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Fleet metrics
	CollectorsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "magpie_collectors_total",
			Help: "Number of registered collectors",
		},
	)

	HeartbeatsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "magpie_heartbeats_total",
			Help: "Total heartbeats received from collectors",
		},
	)

	AssignmentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "magpie_assignments_total",
			Help: "Total per-source assignments handed to collectors",
		},
	)

	FailoversTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "magpie_failovers_total",
			Help: "Total task reassignments caused by dead collectors",
		},
	)

	// Task metrics
	TasksTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "magpie_tasks_total",
			Help: "Number of tasks by status",
		},
		[]string{"status"},
	)

	// Result bus metrics
	ResultsReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "magpie_results_received_total",
			Help: "Total result envelopes submitted by collectors",
		},
	)

	ResultsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "magpie_results_dropped_total",
			Help: "Total result envelopes dropped by the queue high-water policy",
		},
	)

	// Stream metrics
	ActiveStreams = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "magpie_active_streams",
			Help: "Open server streams by peer kind",
		},
		[]string{"kind"}, // "client" or "collector"
	)
)

// Register registers all metrics with the default registry. Call once
// at startup.
func Register() {
	prometheus.MustRegister(
		CollectorsTotal,
		HeartbeatsTotal,
		AssignmentsTotal,
		FailoversTotal,
		TasksTotal,
		ResultsReceivedTotal,
		ResultsDroppedTotal,
		ActiveStreams,
	)
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
