// Package results is the per-task result bus between collector
// submissions and client result streams.
package results
