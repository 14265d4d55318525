// Package storage persists task and user records in BoltDB. Task
// status transitions are validated and serialized inside the write
// transaction.
package storage
