package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/magpielabs/magpie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskStore(t *testing.T) *BoltTaskStore {
	t.Helper()
	store, err := OpenTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func makeTask(id string, status types.TaskStatus, created time.Time) *types.Task {
	return &types.Task{
		ID:         id,
		Token:      "token-a",
		Keywords:   "flood",
		Categories: []string{"disaster"},
		Locations:  []string{"Global"},
		StartTime:  created,
		EndTime:    created.Add(time.Hour),
		Status:     status,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

// TestCreateAndGetTask tests the round trip through the record codec
func TestCreateAndGetTask(t *testing.T) {
	store := newTaskStore(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	task := makeTask("t1", types.TaskPending, now)
	require.NoError(t, store.CreateTask(task))

	got, err := store.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, task.Token, got.Token)
	assert.Equal(t, task.Keywords, got.Keywords)
	assert.Equal(t, task.Categories, got.Categories)
	assert.Equal(t, types.TaskPending, got.Status)
	assert.True(t, task.StartTime.Equal(got.StartTime))
	assert.True(t, task.EndTime.Equal(got.EndTime))
}

// TestCreateTaskDuplicate tests duplicate id rejection
func TestCreateTaskDuplicate(t *testing.T) {
	store := newTaskStore(t)
	now := time.Now().UTC()

	require.NoError(t, store.CreateTask(makeTask("t1", types.TaskPending, now)))
	err := store.CreateTask(makeTask("t1", types.TaskPending, now))
	assert.ErrorIs(t, err, ErrExists)
}

// TestGetTaskNotFound tests the missing-task error
func TestGetTaskNotFound(t *testing.T) {
	store := newTaskStore(t)

	_, err := store.GetTask("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestUpdateStatus tests lifecycle enforcement inside the store
func TestUpdateStatus(t *testing.T) {
	store := newTaskStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.CreateTask(makeTask("t1", types.TaskPending, now)))

	require.NoError(t, store.UpdateStatus("t1", types.TaskDispatched))
	require.NoError(t, store.UpdateStatus("t1", types.TaskCompleted))

	// COMPLETED is terminal.
	err := store.UpdateStatus("t1", types.TaskCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := store.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, types.TaskCompleted, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

// TestUpdateStatusNotFound tests updating a missing task
func TestUpdateStatusNotFound(t *testing.T) {
	store := newTaskStore(t)
	err := store.UpdateStatus("nope", types.TaskDispatched)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestListTasks tests filtering, ordering, and pagination
func TestListTasks(t *testing.T) {
	store := newTaskStore(t)
	base := time.Now().UTC().Add(-time.Hour)

	for i, spec := range []struct {
		id     string
		token  string
		status types.TaskStatus
	}{
		{"t1", "token-a", types.TaskPending},
		{"t2", "token-a", types.TaskCompleted},
		{"t3", "token-b", types.TaskPending},
		{"t4", "token-a", types.TaskDispatched},
	} {
		task := makeTask(spec.id, spec.status, base.Add(time.Duration(i)*time.Minute))
		task.Token = spec.token
		require.NoError(t, store.CreateTask(task))
	}

	t.Run("by token newest first", func(t *testing.T) {
		tasks, err := store.ListTasks(ListFilter{Token: "token-a"})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "t4", tasks[0].ID)
		assert.Equal(t, "t2", tasks[1].ID)
		assert.Equal(t, "t1", tasks[2].ID)
	})

	t.Run("by status", func(t *testing.T) {
		tasks, err := store.ListTasks(ListFilter{Statuses: []types.TaskStatus{types.TaskPending}})
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("limit and offset", func(t *testing.T) {
		tasks, err := store.ListTasks(ListFilter{Token: "token-a", Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "t2", tasks[0].ID)
	})

	t.Run("offset past end", func(t *testing.T) {
		tasks, err := store.ListTasks(ListFilter{Token: "token-a", Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

// TestCountTasks tests counting with and without a status filter
func TestCountTasks(t *testing.T) {
	store := newTaskStore(t)
	now := time.Now().UTC()

	require.NoError(t, store.CreateTask(makeTask("t1", types.TaskPending, now)))
	require.NoError(t, store.CreateTask(makeTask("t2", types.TaskCompleted, now)))
	require.NoError(t, store.CreateTask(makeTask("t3", types.TaskCompleted, now)))

	total, err := store.CountTasks()
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	completed, err := store.CountTasks(types.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)
}

// TestListActiveTasks tests that only PENDING and DISPATCHED are active
func TestListActiveTasks(t *testing.T) {
	store := newTaskStore(t)
	now := time.Now().UTC()

	require.NoError(t, store.CreateTask(makeTask("t1", types.TaskPending, now)))
	require.NoError(t, store.CreateTask(makeTask("t2", types.TaskDispatched, now)))
	require.NoError(t, store.CreateTask(makeTask("t3", types.TaskCancelled, now)))
	require.NoError(t, store.CreateTask(makeTask("t4", types.TaskFailed, now)))

	active, err := store.ListActiveTasks()
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

// TestUserStore tests user persistence
func TestUserStore(t *testing.T) {
	store, err := OpenUserStore(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	defer store.Close()

	user := &types.User{Username: "alice", PasswordHash: "ab12", Salt: "cd34"}
	require.NoError(t, store.CreateUser(user))

	got, err := store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Equal(t, user.Salt, got.Salt)

	assert.ErrorIs(t, store.CreateUser(user), ErrExists)

	_, err = store.GetUser("bob")
	assert.ErrorIs(t, err, ErrNotFound)
}
