// Package types defines the shared domain types of the Magpie
// dispatcher: users, tasks and their lifecycle, catalog sources,
// collector assignments, and result envelopes.
package types
