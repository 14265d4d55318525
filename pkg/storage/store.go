package storage

import (
	"errors"
	"time"

	"github.com/magpielabs/magpie/pkg/types"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExists is returned when a record already exists.
	ErrExists = errors.New("already exists")

	// ErrInvalidTransition is returned when a status update violates
	// the task lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ListFilter narrows ListTasks results. Zero values mean "no filter".
type ListFilter struct {
	Token       string
	Statuses    []types.TaskStatus
	StartAfter  time.Time
	StartBefore time.Time
	Limit       int
	Offset      int
}

// TaskStore persists task records and their lifecycle state.
type TaskStore interface {
	CreateTask(task *types.Task) error
	UpdateStatus(taskID string, status types.TaskStatus) error
	GetTask(taskID string) (*types.Task, error)
	ListTasks(filter ListFilter) ([]*types.Task, error)
	CountTasks(statuses ...types.TaskStatus) (int, error)

	// ListActiveTasks returns PENDING and DISPATCHED tasks; used by
	// the expiry sweeper and by crash recovery.
	ListActiveTasks() ([]*types.Task, error)

	Close() error
}

// UserStore persists client credentials.
type UserStore interface {
	CreateUser(user *types.User) error
	GetUser(username string) (*types.User, error)
	Close() error
}
