// Package fleet tracks the collector fleet: registration, session
// tokens, heartbeats, load-balanced task assignment, expiry purges,
// and failover of dead collectors.
package fleet
