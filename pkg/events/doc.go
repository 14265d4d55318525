// Package events distributes dispatcher telemetry events (task
// lifecycle, fleet changes, results) to in-process subscribers.
package events
