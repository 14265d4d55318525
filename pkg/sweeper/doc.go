// Package sweeper runs the background loop that completes tasks whose
// time window has closed.
package sweeper
