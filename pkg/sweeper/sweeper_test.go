package sweeper

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/magpielabs/magpie/pkg/events"
	"github.com/magpielabs/magpie/pkg/results"
	"github.com/magpielabs/magpie/pkg/storage"
	"github.com/magpielabs/magpie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTask(t *testing.T, store storage.TaskStore, id string, status types.TaskStatus, end time.Time) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, store.CreateTask(&types.Task{
		ID:        id,
		Token:     "tok",
		StartTime: end.Add(-time.Hour),
		EndTime:   end,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

// TestSweepCompletesExpired tests that past-deadline tasks are retired
func TestSweepCompletesExpired(t *testing.T) {
	store, err := storage.OpenTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	bus := results.NewBus()
	now := time.Now().UTC()

	seedTask(t, store, "expired-dispatched", types.TaskDispatched, now.Add(-time.Minute))
	seedTask(t, store, "expired-pending", types.TaskPending, now.Add(-time.Minute))
	seedTask(t, store, "still-running", types.TaskDispatched, now.Add(time.Hour))
	seedTask(t, store, "already-done", types.TaskCompleted, now.Add(-time.Minute))

	s := New(store, bus, nil, time.Second)
	s.sweep()

	for id, want := range map[string]types.TaskStatus{
		"expired-dispatched": types.TaskCompleted,
		"expired-pending":    types.TaskCompleted,
		"still-running":      types.TaskDispatched,
		"already-done":       types.TaskCompleted,
	} {
		task, err := store.GetTask(id)
		require.NoError(t, err)
		assert.Equal(t, want, task.Status, "task %s", id)
	}
}

// TestSweepWakesSubscribers tests that completion unblocks streams
func TestSweepWakesSubscribers(t *testing.T) {
	store, err := storage.OpenTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	bus := results.NewBus()
	seedTask(t, store, "t1", types.TaskDispatched, time.Now().UTC().Add(-time.Minute))

	sub := bus.Subscribe("t1")
	done := make(chan struct{})
	go func() {
		// With nothing pending this blocks until the sweep broadcasts.
		sub.Next(5 * time.Second)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	s := New(store, bus, nil, time.Second)
	s.sweep()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not wake the subscriber")
	}
}

// TestSweepPublishesEvents tests the completion event
func TestSweepPublishesEvents(t *testing.T) {
	store, err := storage.OpenTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()
	sub := broker.Subscribe()

	seedTask(t, store, "t1", types.TaskDispatched, time.Now().UTC().Add(-time.Minute))

	s := New(store, results.NewBus(), broker, time.Second)
	s.sweep()

	select {
	case event := <-sub:
		assert.Equal(t, events.EventTaskCompleted, event.Type)
		assert.Equal(t, "t1", event.TaskID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for completion event")
	}
}

// TestSweepReleasesUnwatchedQueues tests result queue teardown on
// completion
func TestSweepReleasesUnwatchedQueues(t *testing.T) {
	store, err := storage.OpenTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	bus := results.NewBus()
	past := time.Now().UTC().Add(-time.Minute)
	seedTask(t, store, "unwatched", types.TaskDispatched, past)
	seedTask(t, store, "watched", types.TaskDispatched, past)

	bus.Push(&types.ResultEnvelope{TaskID: "unwatched", Result: []byte("a"), Timestamp: time.Now()})
	bus.Push(&types.ResultEnvelope{TaskID: "watched", Result: []byte("b"), Timestamp: time.Now()})
	sub := bus.Subscribe("watched")
	defer sub.Close()

	s := New(store, bus, nil, time.Second)
	s.sweep()

	// The queue with no subscriber is gone: a new subscriber sees no
	// backlog.
	late := bus.Subscribe("unwatched")
	defer late.Close()
	assert.Empty(t, late.Next(10*time.Millisecond))

	// The watched queue survived the sweep and still drains its tail.
	envs := sub.Next(time.Second)
	require.Len(t, envs, 1)
	assert.Equal(t, []byte("b"), envs[0].Result)
}

// TestStartStop tests the background loop lifecycle
func TestStartStop(t *testing.T) {
	store, err := storage.OpenTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	seedTask(t, store, "t1", types.TaskDispatched, time.Now().UTC().Add(-time.Minute))

	s := New(store, results.NewBus(), nil, 10*time.Millisecond)
	s.Start()

	require.Eventually(t, func() bool {
		task, err := store.GetTask("t1")
		return err == nil && task.Status == types.TaskCompleted
	}, time.Second, 10*time.Millisecond)

	s.Stop()
}
