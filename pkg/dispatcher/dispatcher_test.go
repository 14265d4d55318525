package dispatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/magpielabs/magpie/pkg/config"
	"github.com/magpielabs/magpie/pkg/events"
	"github.com/magpielabs/magpie/pkg/fleet"
	"github.com/magpielabs/magpie/pkg/storage"
	"github.com/magpielabs/magpie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSources = `[
  {"id": "src-news", "name": "News", "url": "http://example.com/news.xml",
   "categories": ["news"], "locations": ["UK"]},
  {"id": "src-tech", "name": "Tech", "url": "http://example.com/tech.xml",
   "categories": ["news"], "locations": ["UK"]}
]`

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	dir := t.TempDir()

	sourcesPath := filepath.Join(dir, "sources.json")
	require.NoError(t, os.WriteFile(sourcesPath, []byte(testSources), 0644))

	cfg := config.Default()
	cfg.DBPath = filepath.Join(dir, "tasks.db")
	cfg.UserDBPath = filepath.Join(dir, "users.db")
	cfg.SourcesPath = sourcesPath

	d, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { d.Shutdown() })
	return d
}

// loginClient registers a user and returns a session token.
func loginClient(t *testing.T, d *Dispatcher) string {
	t.Helper()
	require.NoError(t, d.RegisterUser("alice", "pw"))
	token, err := d.LoginUser("alice", "pw")
	require.NoError(t, err)
	return token
}

// addCollector registers and logs in a collector so it is a live
// assignment candidate.
func addCollector(t *testing.T, d *Dispatcher, name string) {
	t.Helper()
	require.NoError(t, d.Fleet().Register(name, "secret"))
	_, err := d.Fleet().Login(name, "secret")
	require.NoError(t, err)
}

// TestUserFlow tests register, login, and authorization
func TestUserFlow(t *testing.T) {
	d := newTestDispatcher(t)

	require.NoError(t, d.RegisterUser("alice", "pw"))
	assert.ErrorIs(t, d.RegisterUser("alice", "pw"), storage.ErrExists)

	_, err := d.LoginUser("alice", "wrong")
	assert.ErrorIs(t, err, ErrAuth)

	token, err := d.LoginUser("alice", "pw")
	require.NoError(t, err)

	username, ok := d.Authorize(token)
	require.True(t, ok)
	assert.Equal(t, "alice", username)

	_, ok = d.Authorize("bogus")
	assert.False(t, ok)
}

// TestStartTaskRequiresAuth tests token gating
func TestStartTaskRequiresAuth(t *testing.T) {
	d := newTestDispatcher(t)

	now := time.Now().UTC()
	_, _, err := d.StartTask("bogus", "kw", "news", "UK", now, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAuth)
}

// TestStartTaskInvalidWindow tests start/end ordering
func TestStartTaskInvalidWindow(t *testing.T) {
	d := newTestDispatcher(t)
	token := loginClient(t, d)

	now := time.Now().UTC()
	_, _, err := d.StartTask(token, "kw", "news", "UK", now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestStartTaskNoSources tests that an unmatchable request leaves no row
func TestStartTaskNoSources(t *testing.T) {
	d := newTestDispatcher(t)
	token := loginClient(t, d)
	addCollector(t, d, "c1")

	now := time.Now().UTC()
	_, msg, err := d.StartTask(token, "kw", "sports", "Mars", now, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrNoSources)
	assert.Contains(t, msg, "No sources")

	count, err := d.Tasks().CountTasks()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

// TestStartTaskNoCollectors tests that matched work with no fleet fails
func TestStartTaskNoCollectors(t *testing.T) {
	d := newTestDispatcher(t)
	token := loginClient(t, d)

	now := time.Now().UTC()
	_, msg, err := d.StartTask(token, "kw", "news", "UK", now, now.Add(time.Hour))
	assert.ErrorIs(t, err, fleet.ErrNoCollectors)
	assert.Equal(t, "No collectors available", msg)

	// The row exists and records the failure.
	tasks, err := d.Tasks().ListTasks(storage.ListFilter{Token: token})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, types.TaskFailed, tasks[0].Status)
}

// TestStartTaskDispatch tests the happy path
func TestStartTaskDispatch(t *testing.T) {
	d := newTestDispatcher(t)
	token := loginClient(t, d)
	addCollector(t, d, "c1")

	now := time.Now().UTC()
	taskID, msg, err := d.StartTask(token, "flood", "news", "UK", now, now.Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, taskID)
	assert.Equal(t, "Assigned 2/2 sources", msg)

	task, err := d.Tasks().GetTask(taskID)
	require.NoError(t, err)
	assert.Equal(t, types.TaskDispatched, task.Status)
	assert.Equal(t, "flood", task.Keywords)
	assert.Equal(t, []string{"news"}, task.Categories)

	assignments, ok := d.Fleet().Assignments("c1")
	require.True(t, ok)
	require.Contains(t, assignments, taskID)
	assert.ElementsMatch(t, []string{"src-news", "src-tech"}, assignments[taskID].Sources)
}

// TestStartTaskBalancesSources tests per-source spreading over the fleet
func TestStartTaskBalancesSources(t *testing.T) {
	d := newTestDispatcher(t)
	token := loginClient(t, d)
	addCollector(t, d, "c1")
	addCollector(t, d, "c2")

	now := time.Now().UTC()
	taskID, _, err := d.StartTask(token, "kw", "news", "UK", now, now.Add(time.Hour))
	require.NoError(t, err)

	a1, ok := d.Fleet().Assignments("c1")
	require.True(t, ok)
	a2, ok := d.Fleet().Assignments("c2")
	require.True(t, ok)

	// Two matched sources across two idle collectors: one each.
	require.Contains(t, a1, taskID)
	require.Contains(t, a2, taskID)
	assert.Len(t, a1[taskID].Sources, 1)
	assert.Len(t, a2[taskID].Sources, 1)
}

// TestCancelTask tests ownership and lifecycle checks
func TestCancelTask(t *testing.T) {
	d := newTestDispatcher(t)
	token := loginClient(t, d)
	addCollector(t, d, "c1")

	now := time.Now().UTC()
	taskID, _, err := d.StartTask(token, "kw", "news", "UK", now, now.Add(time.Hour))
	require.NoError(t, err)

	// A different user cannot cancel it.
	require.NoError(t, d.RegisterUser("mallory", "pw"))
	other, err := d.LoginUser("mallory", "pw")
	require.NoError(t, err)
	assert.ErrorIs(t, d.CancelTask(other, taskID), ErrAuth)

	assert.ErrorIs(t, d.CancelTask("bogus", taskID), ErrAuth)
	assert.ErrorIs(t, d.CancelTask(token, "nope"), storage.ErrNotFound)

	require.NoError(t, d.CancelTask(token, taskID))
	task, err := d.Tasks().GetTask(taskID)
	require.NoError(t, err)
	assert.Equal(t, types.TaskCancelled, task.Status)

	// Cancelling twice hits the terminal-state guard.
	assert.ErrorIs(t, d.CancelTask(token, taskID), storage.ErrInvalidTransition)
}

// TestListTasks tests per-owner listing
func TestListTasks(t *testing.T) {
	d := newTestDispatcher(t)
	token := loginClient(t, d)
	addCollector(t, d, "c1")

	now := time.Now().UTC()
	taskID, _, err := d.StartTask(token, "kw", "news", "UK", now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = d.ListTasks("bogus", nil, 0, 0)
	assert.ErrorIs(t, err, ErrAuth)

	tasks, err := d.ListTasks(token, nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, taskID, tasks[0].ID)

	tasks, err = d.ListTasks(token, []types.TaskStatus{types.TaskCompleted}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// TestCatalogTags tests the category/location listings
func TestCatalogTags(t *testing.T) {
	d := newTestDispatcher(t)

	assert.Equal(t, []string{"news"}, d.Categories())
	assert.Equal(t, []string{"UK"}, d.Locations())
}

// TestEventLogDrain tests the daemon's own event subscription
func TestEventLogDrain(t *testing.T) {
	dir := t.TempDir()
	sourcesPath := filepath.Join(dir, "sources.json")
	require.NoError(t, os.WriteFile(sourcesPath, []byte(testSources), 0644))

	cfg := config.Default()
	cfg.DBPath = filepath.Join(dir, "tasks.db")
	cfg.UserDBPath = filepath.Join(dir, "users.db")
	cfg.SourcesPath = sourcesPath

	d, err := New(cfg)
	require.NoError(t, err)

	// The dispatcher subscribes itself so events always reach the log.
	assert.Equal(t, 1, d.Events().SubscriberCount())
	d.Events().Publish(&events.Event{Type: events.EventTaskCreated, TaskID: "t1"})

	require.NoError(t, d.Shutdown())
	assert.Equal(t, 0, d.Events().SubscriberCount())
}

// TestRecover tests startup recovery of persisted tasks
func TestRecover(t *testing.T) {
	d := newTestDispatcher(t)
	addCollector(t, d, "c1")
	now := time.Now().UTC()

	// One task whose window already closed, one still live.
	require.NoError(t, d.Tasks().CreateTask(&types.Task{
		ID: "expired", Token: "tok", Categories: []string{"news"}, Locations: []string{"UK"},
		StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour),
		Status: types.TaskDispatched, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, d.Tasks().CreateTask(&types.Task{
		ID: "live", Token: "tok", Categories: []string{"news"}, Locations: []string{"UK"},
		StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour),
		Status: types.TaskDispatched, CreatedAt: now, UpdatedAt: now,
	}))

	require.NoError(t, d.Recover())

	expired, err := d.Tasks().GetTask("expired")
	require.NoError(t, err)
	assert.Equal(t, types.TaskCompleted, expired.Status)

	live, err := d.Tasks().GetTask("live")
	require.NoError(t, err)
	assert.Equal(t, types.TaskDispatched, live.Status)

	assignments, ok := d.Fleet().Assignments("c1")
	require.True(t, ok)
	assert.Contains(t, assignments, "live")
	assert.NotContains(t, assignments, "expired")
}
