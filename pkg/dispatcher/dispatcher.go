package dispatcher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/magpielabs/magpie/pkg/auth"
	"github.com/magpielabs/magpie/pkg/catalog"
	"github.com/magpielabs/magpie/pkg/config"
	"github.com/magpielabs/magpie/pkg/events"
	"github.com/magpielabs/magpie/pkg/fleet"
	"github.com/magpielabs/magpie/pkg/log"
	"github.com/magpielabs/magpie/pkg/metrics"
	"github.com/magpielabs/magpie/pkg/results"
	"github.com/magpielabs/magpie/pkg/storage"
	"github.com/magpielabs/magpie/pkg/types"
	"github.com/rs/zerolog"
)

var (
	// ErrAuth is returned for missing or unknown session tokens.
	ErrAuth = errors.New("authentication required")

	// ErrNoSources is returned when no catalog source matches the
	// requested categories and locations. No task row is created in
	// this case.
	ErrNoSources = errors.New("no matching sources")

	// ErrInvalidArgument is returned for malformed task parameters.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Dispatcher wires the task store, user store, source catalog, fleet
// registry, and result bus into the StartTask / result fan-out flows.
// All state is constructed at startup and torn down by Shutdown.
type Dispatcher struct {
	cfg      *config.Config
	tasks    storage.TaskStore
	userDB   storage.UserStore
	users    *auth.Users
	sessions *auth.Sessions
	fleet    *fleet.Registry
	catalog  *catalog.Catalog
	bus      *results.Bus
	broker   *events.Broker
	eventSub events.Subscriber

	logger zerolog.Logger
}

// New opens the persistent stores and assembles a dispatcher.
func New(cfg *config.Config) (*Dispatcher, error) {
	tasks, err := storage.OpenTaskStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}

	userDB, err := storage.OpenUserStore(cfg.UserDBPath)
	if err != nil {
		tasks.Close()
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}

	bus := results.NewBus()
	bus.OnDrop(func(string) { metrics.ResultsDroppedTotal.Inc() })

	broker := events.NewBroker()
	broker.Start()

	d := &Dispatcher{
		cfg:      cfg,
		tasks:    tasks,
		userDB:   userDB,
		users:    auth.NewUsers(userDB),
		sessions: auth.NewSessions(),
		fleet:    fleet.NewRegistry(),
		catalog:  catalog.Load(cfg.SourcesPath),
		bus:      bus,
		broker:   broker,
		logger:   log.WithComponent("dispatcher"),
	}

	// The daemon is its own first subscriber: every event lands in the
	// log even when nothing else is listening.
	d.eventSub = broker.Subscribe()
	go d.logEvents()

	return d, nil
}

// logEvents drains the event subscription into the log until the
// subscription is closed by Shutdown.
func (d *Dispatcher) logEvents() {
	for event := range d.eventSub {
		d.logger.Info().
			Str("event", string(event.Type)).
			Str("task_id", event.TaskID).
			Str("collector", event.Collector).
			Time("at", event.Timestamp).
			Msg("event")
	}
}

// Accessors for the subsystems the RPC layer binds to.

func (d *Dispatcher) Config() *config.Config    { return d.cfg }
func (d *Dispatcher) Tasks() storage.TaskStore  { return d.tasks }
func (d *Dispatcher) Fleet() *fleet.Registry    { return d.fleet }
func (d *Dispatcher) Bus() *results.Bus         { return d.bus }
func (d *Dispatcher) Events() *events.Broker    { return d.broker }
func (d *Dispatcher) Catalog() *catalog.Catalog { return d.catalog }

// RegisterUser creates a new client account.
func (d *Dispatcher) RegisterUser(username, password string) error {
	err := d.users.Register(username, password)
	d.logger.Info().Str("username", username).Bool("ok", err == nil).Msg("register")
	return err
}

// LoginUser authenticates a client and issues a session token.
func (d *Dispatcher) LoginUser(username, password string) (string, error) {
	if !d.users.Authenticate(username, password) {
		d.logger.Warn().Str("username", username).Msg("login failed")
		return "", ErrAuth
	}
	token := d.sessions.Issue(username)
	d.logger.Info().Str("username", username).Msg("login successful")
	return token, nil
}

// Authorize resolves a client session token.
func (d *Dispatcher) Authorize(token string) (string, bool) {
	return d.sessions.Lookup(token)
}

// StartTask creates a task, matches catalog sources, and assigns each
// matched source to the least-loaded live collector. Sources are
// assigned one at a time so different sources of one task can land on
// different collectors. The returned message summarizes placement.
func (d *Dispatcher) StartTask(token, keywords, categoriesCSV, locationsCSV string, start, end time.Time) (string, string, error) {
	if _, ok := d.sessions.Lookup(token); !ok {
		return "", "Authentication required", ErrAuth
	}

	cats := splitCSV(categoriesCSV)
	locs := splitCSV(locationsCSV)
	keywords = strings.TrimSpace(keywords)
	start, end = start.UTC(), end.UTC()

	if end.Before(start) {
		return "", "start_time must not be after end_time", ErrInvalidArgument
	}

	matched := d.catalog.Match(cats, locs)
	if len(matched) == 0 {
		msg := fmt.Sprintf("No sources for %v/%v", cats, locs)
		return "", msg, ErrNoSources
	}

	taskID := newID()
	now := time.Now().UTC()
	task := &types.Task{
		ID:         taskID,
		Token:      token,
		Keywords:   keywords,
		Categories: cats,
		Locations:  locs,
		StartTime:  start,
		EndTime:    end,
		Status:     types.TaskPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := d.tasks.CreateTask(task); err != nil {
		return "", "", fmt.Errorf("failed to create task: %w", err)
	}
	d.broker.Publish(&events.Event{Type: events.EventTaskCreated, TaskID: taskID})

	var assigned, failed []string
	for _, src := range matched {
		owner, err := d.fleet.AssignBalanced(taskID, []string{src.ID}, end, d.cfg.HeartbeatTimeout)
		if err != nil {
			failed = append(failed, src.ID)
			d.logger.Warn().Str("task_id", taskID).Str("source", src.ID).Err(err).Msg("assignment failed")
			continue
		}
		assigned = append(assigned, src.ID)
		metrics.AssignmentsTotal.Inc()
		d.logger.Debug().Str("task_id", taskID).Str("source", src.ID).Str("collector", owner).Msg("source assigned")
	}

	if len(assigned) == 0 {
		if err := d.tasks.UpdateStatus(taskID, types.TaskFailed); err != nil {
			d.logger.Error().Str("task_id", taskID).Err(err).Msg("failed to mark task failed")
		}
		d.broker.Publish(&events.Event{Type: events.EventTaskFailed, TaskID: taskID})
		return "", "No collectors available", fleet.ErrNoCollectors
	}

	if err := d.tasks.UpdateStatus(taskID, types.TaskDispatched); err != nil {
		return "", "", fmt.Errorf("failed to mark task dispatched: %w", err)
	}
	d.broker.Publish(&events.Event{Type: events.EventTaskDispatched, TaskID: taskID})
	d.logger.Info().Str("task_id", taskID).Int("assigned", len(assigned)).Int("matched", len(matched)).Msg("task dispatched")

	msg := fmt.Sprintf("Assigned %d/%d sources", len(assigned), len(matched))
	if len(failed) > 0 {
		msg += "; failed: " + strings.Join(failed, ",")
	}
	return taskID, msg, nil
}

// CancelTask soft-cancels a non-terminal task owned by the token.
func (d *Dispatcher) CancelTask(token, taskID string) error {
	if _, ok := d.sessions.Lookup(token); !ok {
		return ErrAuth
	}
	task, err := d.tasks.GetTask(taskID)
	if err != nil {
		return err
	}
	if task.Token != token {
		return ErrAuth
	}
	if err := d.tasks.UpdateStatus(taskID, types.TaskCancelled); err != nil {
		return err
	}
	d.broker.Publish(&events.Event{Type: events.EventTaskCancelled, TaskID: taskID})
	d.bus.Wake(taskID)
	return nil
}

// ListTasks returns the owner's tasks, newest first.
func (d *Dispatcher) ListTasks(token string, statuses []types.TaskStatus, limit, offset int) ([]*types.Task, error) {
	if _, ok := d.sessions.Lookup(token); !ok {
		return nil, ErrAuth
	}
	return d.tasks.ListTasks(storage.ListFilter{
		Token:    token,
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
}

// Categories reloads the catalog and returns the available categories.
func (d *Dispatcher) Categories() []string {
	d.catalog.Reload()
	return d.catalog.Categories()
}

// Locations reloads the catalog and returns the available locations.
func (d *Dispatcher) Locations() []string {
	d.catalog.Reload()
	return d.catalog.Locations()
}

// Recover handles restart: tasks past their end time are completed,
// and still-live dispatched work is offered back to the fleet. Called
// once at startup, before the listeners come up.
func (d *Dispatcher) Recover() error {
	active, err := d.tasks.ListActiveTasks()
	if err != nil {
		return fmt.Errorf("failed to list active tasks: %w", err)
	}

	now := time.Now().UTC()
	for _, task := range active {
		if !task.EndTime.After(now) {
			if err := d.tasks.UpdateStatus(task.ID, types.TaskCompleted); err != nil {
				d.logger.Error().Str("task_id", task.ID).Err(err).Msg("recovery: failed to complete expired task")
			}
			continue
		}

		// The fleet table did not survive the restart; re-place the
		// task's sources. Collectors that have not reconnected yet
		// leave it DISPATCHED for the sweeper to retire.
		matched := d.catalog.Match(task.Categories, task.Locations)
		for _, src := range matched {
			if _, err := d.fleet.AssignBalanced(task.ID, []string{src.ID}, task.EndTime, d.cfg.HeartbeatTimeout); err != nil {
				d.logger.Warn().Str("task_id", task.ID).Str("source", src.ID).Err(err).Msg("recovery: assignment failed")
			}
		}
	}

	d.logger.Info().Int("active", len(active)).Msg("recovery complete")
	return nil
}

// UpdateTaskGauges refreshes the per-status task gauges.
func (d *Dispatcher) UpdateTaskGauges() {
	for _, status := range []types.TaskStatus{
		types.TaskPending, types.TaskDispatched, types.TaskCompleted,
		types.TaskFailed, types.TaskCancelled,
	} {
		n, err := d.tasks.CountTasks(status)
		if err != nil {
			continue
		}
		metrics.TasksTotal.WithLabelValues(string(status)).Set(float64(n))
	}
	metrics.CollectorsTotal.Set(float64(d.fleet.Len()))
}

// Shutdown wakes all streams and closes the stores.
func (d *Dispatcher) Shutdown() error {
	d.bus.WakeAll()
	d.broker.Unsubscribe(d.eventSub)
	d.broker.Stop()

	if err := d.tasks.Close(); err != nil {
		return fmt.Errorf("failed to close task store: %w", err)
	}
	if err := d.userDB.Close(); err != nil {
		return fmt.Errorf("failed to close user store: %w", err)
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// newID returns a 128-bit id as 32 hex chars.
func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
