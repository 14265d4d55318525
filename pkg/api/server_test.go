package api

import (
	"context"
	"testing"
	"time"

	"github.com/magpielabs/magpie/api/proto"
	"github.com/magpielabs/magpie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAssignmentToProto tests the single category/location wire shape
func TestAssignmentToProto(t *testing.T) {
	now := time.Now().UTC()
	task := &types.Task{
		ID:         "t1",
		Keywords:   "flood",
		Categories: []string{"news", "politics"},
		Locations:  []string{"UK", "Europe"},
		StartTime:  now,
		EndTime:    now.Add(time.Hour),
	}

	a := assignmentToProto(task, []string{"s1", "s2"})
	assert.Equal(t, "t1", a.TaskId)
	assert.Equal(t, "flood", a.Keywords)
	assert.Equal(t, "news", a.Category)
	assert.Equal(t, "UK", a.Location)
	assert.Equal(t, []string{"s1", "s2"}, a.Sources)
	assert.True(t, a.StartTime.AsTime().Equal(now))

	empty := assignmentToProto(&types.Task{ID: "t2"}, nil)
	assert.Equal(t, "", empty.Category)
	assert.Equal(t, "", empty.Location)
}

// TestSubmitTaskResult tests that rejected submissions leave the fleet
// untouched and accepted ones reach the bus
func TestSubmitTaskResult(t *testing.T) {
	d := newHealthDispatcher(t, "[]")
	srv := &Server{dispatcher: d}
	ctx := context.Background()

	require.NoError(t, d.Fleet().Register("c1", "s1"))
	token, err := d.Fleet().Login("c1", "s1")
	require.NoError(t, err)

	ack, err := srv.SubmitTaskResult(ctx, &proto.CollectorTaskResult{
		Token: "bogus", TaskId: "t1", Result: []byte("{}"),
	})
	require.NoError(t, err)
	assert.False(t, ack.Success)
	assert.Equal(t, "Invalid token", ack.Message)

	// A valid token with an unknown task is rejected without crediting
	// the collector.
	ack, err = srv.SubmitTaskResult(ctx, &proto.CollectorTaskResult{
		Token: token, TaskId: "nope", Result: []byte("{}"),
	})
	require.NoError(t, err)
	assert.False(t, ack.Success)
	assert.Equal(t, "Unknown task", ack.Message)

	m := d.Fleet().Metrics()
	require.Len(t, m, 1)
	assert.Equal(t, 0, m[0].CompletedCount)

	now := time.Now().UTC()
	require.NoError(t, d.Tasks().CreateTask(&types.Task{
		ID: "t1", Token: "tok",
		StartTime: now, EndTime: now.Add(time.Hour),
		Status: types.TaskDispatched, CreatedAt: now, UpdatedAt: now,
	}))

	ack, err = srv.SubmitTaskResult(ctx, &proto.CollectorTaskResult{
		Token: token, TaskId: "t1", Result: []byte(`{"entry_id":"e1"}`),
	})
	require.NoError(t, err)
	assert.True(t, ack.Success)

	m = d.Fleet().Metrics()
	require.Len(t, m, 1)
	assert.Equal(t, 1, m[0].CompletedCount)

	sub := d.Bus().Subscribe("t1")
	defer sub.Close()
	envs := sub.Next(time.Second)
	require.Len(t, envs, 1)
	assert.Equal(t, []byte(`{"entry_id":"e1"}`), envs[0].Result)
}
