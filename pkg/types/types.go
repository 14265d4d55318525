package types

import (
	"time"
)

// User is a registered client account. Credentials are stored as a
// hex-encoded PBKDF2 hash and salt; records are never mutated.
type User struct {
	Username     string
	PasswordHash string
	Salt         string
}

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskDispatched TaskStatus = "DISPATCHED"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskFailed     TaskStatus = "FAILED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are allowed from s.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskCompleted, TaskFailed, TaskCancelled:
		return true
	}
	return false
}

// ValidTransition reports whether a task may move from one status to
// another. The lifecycle is PENDING -> DISPATCHED -> COMPLETED, with
// FAILED reachable only from PENDING and CANCELLED reachable from any
// non-terminal state.
func ValidTransition(from, to TaskStatus) bool {
	if from == to {
		return false
	}
	switch to {
	case TaskDispatched:
		return from == TaskPending
	case TaskCompleted:
		return from == TaskPending || from == TaskDispatched
	case TaskFailed:
		return from == TaskPending
	case TaskCancelled:
		return !from.Terminal()
	}
	return false
}

// Task is a client-originated search request, decomposed into
// per-source assignments across the collector fleet.
type Task struct {
	ID         string
	Token      string // owner session token
	Keywords   string
	Categories []string
	Locations  []string
	StartTime  time.Time
	EndTime    time.Time
	Status     TaskStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Source is one feed descriptor from the catalog. Category and
// location entries may themselves be comma-separated lists.
type Source struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URL        string   `json:"url"`
	Type       string   `json:"type,omitempty"` // "rss" (default), "gdacs", ...
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
}

// Assignment is the unit of work handed to one collector: the sources
// it owns for a task, valid until EndTime.
type Assignment struct {
	Sources []string
	EndTime time.Time
}

// CollectorMetrics is a point-in-time snapshot of one collector's
// registry entry, safe to use outside the fleet lock.
type CollectorMetrics struct {
	Name           string
	AssignedCount  int
	CompletedCount int
	HeartbeatCount int
	LastHeartbeat  time.Time
	LastResultTime time.Time
	CurrentLoad    int
}

// ResultEnvelope carries one opaque collector payload from the fleet
// to subscribed client streams. The dispatcher never parses Result.
type ResultEnvelope struct {
	TaskID    string
	Result    []byte
	Timestamp time.Time
}
