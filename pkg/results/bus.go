package results

import (
	"sync"
	"time"

	"github.com/magpielabs/magpie/pkg/log"
	"github.com/magpielabs/magpie/pkg/types"
)

// HighWaterMark bounds each per-task queue. When a producer pushes
// past it the oldest envelope is dropped and the drop is counted.
const HighWaterMark = 1024

// topic is the per-task queue plus its condition variable. entries is
// a sliding window over the envelope sequence; firstSeq is the
// sequence number of entries[0].
type topic struct {
	mu       sync.Mutex
	cond     *sync.Cond
	entries  []*types.ResultEnvelope
	firstSeq uint64
	subs     int
	dropped  uint64
}

func newTopic() *topic {
	t := &topic{}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// Bus fans collector results out to per-task subscribers. Queues are
// created lazily on first reference; within one task, push order
// equals yield order per subscriber.
type Bus struct {
	mu     sync.Mutex
	topics map[string]*topic

	onDrop func(taskID string) // metrics hook, may be nil
}

// NewBus creates an empty result bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string]*topic)}
}

// OnDrop installs a callback invoked whenever an envelope is dropped
// by the high-water policy. Must be set before the bus is shared.
func (b *Bus) OnDrop(fn func(taskID string)) {
	b.onDrop = fn
}

func (b *Bus) topicFor(taskID string) *topic {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[taskID]
	if !ok {
		t = newTopic()
		b.topics[taskID] = t
	}
	return t
}

// Push appends an envelope to the task's queue and wakes subscribers.
func (b *Bus) Push(env *types.ResultEnvelope) {
	t := b.topicFor(env.TaskID)

	t.mu.Lock()
	t.entries = append(t.entries, env)
	if len(t.entries) > HighWaterMark {
		over := len(t.entries) - HighWaterMark
		t.entries = t.entries[over:]
		t.firstSeq += uint64(over)
		t.dropped += uint64(over)
		dropped := t.dropped
		t.mu.Unlock()

		logger := log.WithTaskID(env.TaskID)
		logger.Warn().
			Uint64("dropped_total", dropped).
			Msg("result queue over high-water mark, dropped oldest")
		if b.onDrop != nil {
			b.onDrop(env.TaskID)
		}
	} else {
		t.mu.Unlock()
	}
	t.cond.Broadcast()
}

// Wake broadcasts the task's condition so blocked subscribers re-check
// terminal state. Used by the sweeper and at shutdown.
func (b *Bus) Wake(taskID string) {
	b.mu.Lock()
	t, ok := b.topics[taskID]
	b.mu.Unlock()
	if ok {
		t.cond.Broadcast()
	}
}

// WakeAll broadcasts every topic.
func (b *Bus) WakeAll() {
	b.mu.Lock()
	topics := make([]*topic, 0, len(b.topics))
	for _, t := range b.topics {
		topics = append(topics, t)
	}
	b.mu.Unlock()

	for _, t := range topics {
		t.cond.Broadcast()
	}
}

// Subscription is one consumer's cursor over a task's queue. Not safe
// for concurrent use by multiple goroutines.
type Subscription struct {
	taskID string
	t      *topic
	next   uint64
}

// Subscribe attaches a new consumer to the task's queue. The cursor
// starts at the oldest retained envelope, so results pushed before the
// subscriber arrived are replayed.
func (b *Bus) Subscribe(taskID string) *Subscription {
	t := b.topicFor(taskID)

	t.mu.Lock()
	next := t.firstSeq
	t.subs++
	t.mu.Unlock()

	return &Subscription{taskID: taskID, t: t, next: next}
}

// Next blocks up to timeout for new envelopes and returns everything
// pending past the cursor, in push order. An empty slice means the
// wait timed out (or a wake-up fired); callers re-check terminal state
// and loop.
func (s *Subscription) Next(timeout time.Duration) []*types.ResultEnvelope {
	t := s.t

	t.mu.Lock()
	defer t.mu.Unlock()

	if s.next >= t.firstSeq+uint64(len(t.entries)) {
		// Bounded wait: sync.Cond has no timed wait, so arm a timer
		// that broadcasts. Waiters re-check their predicate anyway.
		timer := time.AfterFunc(timeout, t.cond.Broadcast)
		t.cond.Wait()
		timer.Stop()
	}

	// The window may have slid past a slow cursor.
	if s.next < t.firstSeq {
		s.next = t.firstSeq
	}

	start := s.next - t.firstSeq
	if start >= uint64(len(t.entries)) {
		return nil
	}
	pending := t.entries[start:]
	out := make([]*types.ResultEnvelope, len(pending))
	copy(out, pending)
	s.next += uint64(len(out))
	return out
}

// Close detaches the subscription.
func (s *Subscription) Close() {
	s.t.mu.Lock()
	if s.t.subs > 0 {
		s.t.subs--
	}
	s.t.mu.Unlock()
}

// Release drops the task's queue once no subscriber remains. Called
// after the task reaches a terminal state.
func (b *Bus) Release(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[taskID]
	if !ok {
		return
	}
	t.mu.Lock()
	idle := t.subs == 0
	t.mu.Unlock()
	if idle {
		delete(b.topics, taskID)
	}
}

// Dropped returns the number of envelopes dropped for a task.
func (b *Bus) Dropped(taskID string) uint64 {
	b.mu.Lock()
	t, ok := b.topics[taskID]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}
