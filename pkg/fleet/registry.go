package fleet

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/magpielabs/magpie/pkg/log"
	"github.com/magpielabs/magpie/pkg/types"
)

var (
	// ErrInvalidToken is returned for unknown or superseded tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExists is returned when a collector name is already taken.
	ErrExists = errors.New("collector already registered")

	// ErrInvalidSecret is returned on login with bad credentials.
	ErrInvalidSecret = errors.New("invalid name or secret")

	// ErrNoCollectors is returned when no live collector can take an
	// assignment.
	ErrNoCollectors = errors.New("no collectors available")
)

// collector is one registry entry. All fields are guarded by the
// registry mutex; callers only ever see copies.
type collector struct {
	name          string
	secret        string
	token         string
	lastHeartbeat time.Time
	assigned      map[string]*types.Assignment

	assignedCount  int
	completedCount int
	heartbeatCount int
	lastResultTime time.Time
}

func (c *collector) metrics() types.CollectorMetrics {
	return types.CollectorMetrics{
		Name:           c.name,
		AssignedCount:  c.assignedCount,
		CompletedCount: c.completedCount,
		HeartbeatCount: c.heartbeatCount,
		LastHeartbeat:  c.lastHeartbeat,
		LastResultTime: c.lastResultTime,
		CurrentLoad:    len(c.assigned),
	}
}

// Expired is one purged (collector, task) pair.
type Expired struct {
	Collector string
	TaskID    string
}

// Reassignment records one failover: a task moved off a dead collector.
type Reassignment struct {
	Dead     string
	TaskID   string
	NewOwner string
}

// Registry is the in-memory collector fleet: credentials, session
// tokens, heartbeats, and per-collector assignment tables. A single
// mutex serializes every read-modify-write.
type Registry struct {
	mu         sync.Mutex
	collectors map[string]*collector
	tokens     map[string]string // token -> name

	// now is swappable for tests.
	now func() time.Time
}

// NewRegistry creates an empty fleet registry.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make(map[string]*collector),
		tokens:     make(map[string]string),
		now:        time.Now,
	}
}

// Register adds a collector name/secret pair.
func (r *Registry) Register(name, secret string) error {
	if name == "" || secret == "" {
		return fmt.Errorf("name and secret are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collectors[name]; ok {
		return ErrExists
	}
	r.collectors[name] = &collector{
		name:     name,
		secret:   secret,
		assigned: make(map[string]*types.Assignment),
	}
	return nil
}

// Login validates the secret and issues a fresh 128-bit hex session
// token, recording an initial heartbeat. Any prior token for the
// collector is invalidated.
func (r *Registry) Login(name, secret string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collectors[name]
	if !ok || c.secret != secret {
		return "", ErrInvalidSecret
	}

	if c.token != "" {
		delete(r.tokens, c.token)
	}
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	c.token = token
	c.lastHeartbeat = r.now()
	c.heartbeatCount++
	r.tokens[token] = name
	return token, nil
}

// Heartbeat records liveness for the collector owning the token. A
// zero timestamp means "now".
func (r *Registry) Heartbeat(token string, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.byToken(token)
	if err != nil {
		return err
	}
	if ts.IsZero() {
		ts = r.now()
	}
	c.lastHeartbeat = ts
	c.heartbeatCount++
	return nil
}

// Assign appends sources to the collector's assignment entry for the
// task, merging without duplicates. The assigned counter is bumped
// only when the task first appears for this collector.
func (r *Registry) Assign(token, taskID string, sources []string, endTime time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.byToken(token)
	if err != nil {
		return err
	}
	assignLocked(c, taskID, sources, endTime)
	return nil
}

func assignLocked(c *collector, taskID string, sources []string, endTime time.Time) {
	entry, ok := c.assigned[taskID]
	if !ok {
		entry = &types.Assignment{EndTime: endTime}
		c.assigned[taskID] = entry
		c.assignedCount++
	}
	for _, src := range sources {
		found := false
		for _, have := range entry.Sources {
			if have == src {
				found = true
				break
			}
		}
		if !found {
			entry.Sources = append(entry.Sources, src)
		}
	}
}

// AssignBalanced picks the least-loaded live collector and assigns the
// sources to it, returning the chosen collector's name. Candidates
// must have heartbeated within maxIdle; ties go to the earliest
// last heartbeat.
func (r *Registry) AssignBalanced(taskID string, sources []string, endTime time.Time, maxIdle time.Duration) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.assignBalancedLocked(taskID, sources, endTime, maxIdle)
}

func (r *Registry) assignBalancedLocked(taskID string, sources []string, endTime time.Time, maxIdle time.Duration) (string, error) {
	c := r.chooseLeastLoadedLocked(maxIdle)
	if c == nil {
		return "", ErrNoCollectors
	}
	assignLocked(c, taskID, sources, endTime)
	return c.name, nil
}

func (r *Registry) chooseLeastLoadedLocked(maxIdle time.Duration) *collector {
	now := r.now()
	var best *collector
	for _, c := range r.collectors {
		if c.lastHeartbeat.IsZero() || now.Sub(c.lastHeartbeat) > maxIdle {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		switch {
		case len(c.assigned) < len(best.assigned):
			best = c
		case len(c.assigned) == len(best.assigned) && c.lastHeartbeat.Before(best.lastHeartbeat):
			best = c
		}
	}
	return best
}

// RecordResult bumps the completed counter for the collector owning
// the token. A zero timestamp means "now".
func (r *Registry) RecordResult(token, taskID string, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.byToken(token)
	if err != nil {
		return err
	}
	if ts.IsZero() {
		ts = r.now()
	}
	c.completedCount++
	c.lastResultTime = ts
	return nil
}

// PurgeExpired drops every assignment whose end time has passed and
// returns the removed (collector, task) pairs.
func (r *Registry) PurgeExpired() []Expired {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var expired []Expired
	for name, c := range r.collectors {
		for taskID, entry := range c.assigned {
			if !now.Before(entry.EndTime) {
				expired = append(expired, Expired{Collector: name, TaskID: taskID})
				delete(c.assigned, taskID)
			}
		}
	}
	return expired
}

// FailoverDead removes collectors whose last heartbeat is older than
// twice the heartbeat timeout and rebalances their outstanding
// assignments across the surviving fleet. Assignments with no live
// taker are dropped and logged; the sweeper will retire their tasks.
func (r *Registry) FailoverDead(heartbeatTimeout time.Duration) []Reassignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := log.WithComponent("fleet")
	now := r.now()

	var dead []string
	for name, c := range r.collectors {
		if !c.lastHeartbeat.IsZero() && now.Sub(c.lastHeartbeat) > 2*heartbeatTimeout {
			dead = append(dead, name)
		}
	}

	var moved []Reassignment
	for _, name := range dead {
		c := r.collectors[name]
		delete(r.collectors, name)
		if c.token != "" {
			delete(r.tokens, c.token)
		}

		for taskID, entry := range c.assigned {
			newOwner, err := r.assignBalancedLocked(taskID, entry.Sources, entry.EndTime, heartbeatTimeout)
			if err != nil {
				logger.Warn().
					Str("collector", name).
					Str("task_id", taskID).
					Msg("no live collector to take over assignment")
				continue
			}
			moved = append(moved, Reassignment{Dead: name, TaskID: taskID, NewOwner: newOwner})
		}
	}
	return moved
}

// Resolve returns the collector name owning a token.
func (r *Registry) Resolve(token string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.tokens[token]
	return name, ok
}

// Exists reports whether a collector is still registered.
func (r *Registry) Exists(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.collectors[name]
	return ok
}

// Assignments returns a copy of the collector's assignment table,
// safe to iterate while streaming. ok is false when the collector has
// been removed from the registry.
func (r *Registry) Assignments(name string) (map[string]types.Assignment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collectors[name]
	if !ok {
		return nil, false
	}
	out := make(map[string]types.Assignment, len(c.assigned))
	for taskID, entry := range c.assigned {
		sources := make([]string, len(entry.Sources))
		copy(sources, entry.Sources)
		out[taskID] = types.Assignment{Sources: sources, EndTime: entry.EndTime}
	}
	return out, true
}

// Metrics returns a snapshot of every collector's counters.
func (r *Registry) Metrics() []types.CollectorMetrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.CollectorMetrics, 0, len(r.collectors))
	for _, c := range r.collectors {
		out = append(out, c.metrics())
	}
	return out
}

// Len returns the number of registered collectors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.collectors)
}

func (r *Registry) byToken(token string) (*collector, error) {
	name, ok := r.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	c, ok := r.collectors[name]
	if !ok {
		return nil, ErrInvalidToken
	}
	return c, nil
}
