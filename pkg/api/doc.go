// Package api exposes the dispatcher over gRPC: one service for
// clients, one for collectors, plus an HTTP health/metrics listener.
package api
