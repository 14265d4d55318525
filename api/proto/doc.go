// Package proto holds the wire types and service bindings for the
// dispatcher's two gRPC surfaces. The Go files are maintained by hand
// in the protoc output shape; dispatcher.proto is the source of truth
// for field numbers and method names.
package proto
