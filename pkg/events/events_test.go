package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublishSubscribe tests event delivery to subscribers
func TestPublishSubscribe(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	assert.Equal(t, 1, broker.SubscriberCount())

	broker.Publish(&Event{Type: EventTaskCreated, TaskID: "t1"})

	select {
	case event := <-sub:
		assert.Equal(t, EventTaskCreated, event.Type)
		assert.Equal(t, "t1", event.TaskID)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

// TestBroadcast tests fan-out to multiple subscribers
func TestBroadcast(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	s1 := broker.Subscribe()
	s2 := broker.Subscribe()

	broker.Publish(&Event{Type: EventCollectorDead, Collector: "c1"})

	for _, sub := range []Subscriber{s1, s2} {
		select {
		case event := <-sub:
			assert.Equal(t, EventCollectorDead, event.Type)
			assert.Equal(t, "c1", event.Collector)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

// TestUnsubscribe tests channel teardown
func TestUnsubscribe(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	broker.Unsubscribe(sub)
	assert.Equal(t, 0, broker.SubscriberCount())

	_, open := <-sub
	assert.False(t, open)
}

// TestSlowSubscriber tests that a full buffer never blocks publishing
func TestSlowSubscriber(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	for i := 0; i < 200; i++ {
		broker.Publish(&Event{Type: EventResultReceived, TaskID: "t1"})
	}

	// The subscriber buffer holds 50; the rest were dropped, and the
	// broker itself stayed responsive.
	require.Eventually(t, func() bool { return len(sub) == cap(sub) }, time.Second, 10*time.Millisecond)
}
