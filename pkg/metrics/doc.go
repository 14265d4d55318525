// Package metrics exposes Prometheus metrics for the dispatcher:
// fleet size, task states, assignment and failover counters, and
// result bus throughput.
package metrics
