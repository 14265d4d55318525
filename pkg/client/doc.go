// Package client wraps the dispatcher's gRPC surfaces for CLI and
// collector usage.
package client
