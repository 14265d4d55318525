package sweeper

import (
	"time"

	"github.com/magpielabs/magpie/pkg/events"
	"github.com/magpielabs/magpie/pkg/log"
	"github.com/magpielabs/magpie/pkg/results"
	"github.com/magpielabs/magpie/pkg/storage"
	"github.com/magpielabs/magpie/pkg/types"
)

// Sweeper retires tasks whose end time has passed: it marks them
// COMPLETED and wakes their result bus subscribers so client streams
// drain any tail and exit.
type Sweeper struct {
	tasks    storage.TaskStore
	bus      *results.Bus
	broker   *events.Broker
	interval time.Duration
	stopCh   chan struct{}
}

// New creates a sweeper. broker may be nil.
func New(tasks storage.TaskStore, bus *results.Bus, broker *events.Broker, interval time.Duration) *Sweeper {
	return &Sweeper{
		tasks:    tasks,
		bus:      bus,
		broker:   broker,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sweep loop
func (s *Sweeper) Start() {
	go s.run()
}

// Stop stops the sweeper
func (s *Sweeper) Stop() {
	close(s.stopCh)
}

func (s *Sweeper) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep performs one pass. A bad record is logged and skipped; the
// loop never terminates on a single failure.
func (s *Sweeper) sweep() {
	logger := log.WithComponent("sweeper")

	active, err := s.tasks.ListActiveTasks()
	if err != nil {
		logger.Error().Err(err).Msg("failed to list active tasks")
		return
	}

	now := time.Now().UTC()
	for _, task := range active {
		if task.EndTime.After(now) {
			continue
		}
		if err := s.tasks.UpdateStatus(task.ID, types.TaskCompleted); err != nil {
			logger.Error().Str("task_id", task.ID).Err(err).Msg("failed to complete task")
			continue
		}
		s.bus.Wake(task.ID)
		// Tear down the queue when nobody is streaming it; active
		// subscribers release it themselves once they drain the tail.
		s.bus.Release(task.ID)
		if s.broker != nil {
			s.broker.Publish(&events.Event{Type: events.EventTaskCompleted, TaskID: task.ID})
		}
		logger.Info().Str("task_id", task.ID).Msg("task completed")
	}
}
