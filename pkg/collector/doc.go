// Package collector implements the worker runtime: it authenticates
// against the dispatcher, heartbeats, consumes assignment streams, and
// submits collected feed entries as task results.
package collector
