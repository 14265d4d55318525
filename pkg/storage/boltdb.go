package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/magpielabs/magpie/pkg/types"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketTasks = []byte("tasks")
	bucketUsers = []byte("users")
)

// taskRecord is the stored form of a task. Times are RFC 3339 with
// microsecond precision, matching the wire contract.
type taskRecord struct {
	TaskID     string   `json:"task_id"`
	Token      string   `json:"token"`
	Keywords   string   `json:"keywords"`
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

const timeLayout = "2006-01-02T15:04:05.999999Z07:00"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toRecord(t *types.Task) *taskRecord {
	return &taskRecord{
		TaskID:     t.ID,
		Token:      t.Token,
		Keywords:   t.Keywords,
		Categories: t.Categories,
		Locations:  t.Locations,
		StartTime:  encodeTime(t.StartTime),
		EndTime:    encodeTime(t.EndTime),
		Status:     string(t.Status),
		CreatedAt:  encodeTime(t.CreatedAt),
		UpdatedAt:  encodeTime(t.UpdatedAt),
	}
}

func fromRecord(r *taskRecord) *types.Task {
	return &types.Task{
		ID:         r.TaskID,
		Token:      r.Token,
		Keywords:   r.Keywords,
		Categories: r.Categories,
		Locations:  r.Locations,
		StartTime:  decodeTime(r.StartTime),
		EndTime:    decodeTime(r.EndTime),
		Status:     types.TaskStatus(r.Status),
		CreatedAt:  decodeTime(r.CreatedAt),
		UpdatedAt:  decodeTime(r.UpdatedAt),
	}
}

// BoltTaskStore implements TaskStore using BoltDB
type BoltTaskStore struct {
	db *bolt.DB
}

// OpenTaskStore opens (or creates) the task database at path.
func OpenTaskStore(path string) (*BoltTaskStore, error) {
	db, err := openBolt(path, bucketTasks)
	if err != nil {
		return nil, err
	}
	return &BoltTaskStore{db: db}, nil
}

func openBolt(path string, buckets ...[]byte) (*bolt.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database
func (s *BoltTaskStore) Close() error {
	return s.db.Close()
}

// CreateTask inserts a new task. The caller sets status and timestamps;
// an existing id is rejected.
func (s *BoltTaskStore) CreateTask(task *types.Task) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTasks)
		if b.Get([]byte(task.ID)) != nil {
			return fmt.Errorf("task %s: %w", task.ID, ErrExists)
		}
		data, err := json.Marshal(toRecord(task))
		if err != nil {
			return err
		}
		return b.Put([]byte(task.ID), data)
	})
}

// UpdateStatus moves a task to a new status, bumping updated_at.
// Transitions are checked against the lifecycle; Bolt's single-writer
// transaction serializes updates per task.
func (s *BoltTaskStore) UpdateStatus(taskID string, status types.TaskStatus) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTasks)
		data := b.Get([]byte(taskID))
		if data == nil {
			return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		var rec taskRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		if !types.ValidTransition(types.TaskStatus(rec.Status), status) {
			return fmt.Errorf("task %s: %s -> %s: %w", taskID, rec.Status, status, ErrInvalidTransition)
		}
		rec.Status = string(status)
		rec.UpdatedAt = encodeTime(time.Now())

		out, err := json.Marshal(&rec)
		if err != nil {
			return err
		}
		return b.Put([]byte(taskID), out)
	})
}

// GetTask fetches a single task by id.
func (s *BoltTaskStore) GetTask(taskID string) (*types.Task, error) {
	var task *types.Task
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTasks)
		data := b.Get([]byte(taskID))
		if data == nil {
			return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		var rec taskRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		task = fromRecord(&rec)
		return nil
	})
	return task, err
}

// ListTasks returns tasks matching the filter, newest first.
func (s *BoltTaskStore) ListTasks(filter ListFilter) ([]*types.Task, error) {
	var tasks []*types.Task
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTasks)
		return b.ForEach(func(k, v []byte) error {
			var rec taskRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			task := fromRecord(&rec)
			if matchesFilter(task, filter) {
				tasks = append(tasks, task)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(tasks) {
			return nil, nil
		}
		tasks = tasks[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(tasks) {
		tasks = tasks[:filter.Limit]
	}
	return tasks, nil
}

func matchesFilter(task *types.Task, filter ListFilter) bool {
	if filter.Token != "" && task.Token != filter.Token {
		return false
	}
	if len(filter.Statuses) > 0 {
		found := false
		for _, st := range filter.Statuses {
			if task.Status == st {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !filter.StartAfter.IsZero() && task.StartTime.Before(filter.StartAfter) {
		return false
	}
	if !filter.StartBefore.IsZero() && task.StartTime.After(filter.StartBefore) {
		return false
	}
	return true
}

// CountTasks returns the number of tasks, optionally restricted to the
// given statuses.
func (s *BoltTaskStore) CountTasks(statuses ...types.TaskStatus) (int, error) {
	want := make(map[types.TaskStatus]struct{}, len(statuses))
	for _, st := range statuses {
		want[st] = struct{}{}
	}

	count := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTasks)
		return b.ForEach(func(k, v []byte) error {
			if len(want) == 0 {
				count++
				return nil
			}
			var rec taskRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			if _, ok := want[types.TaskStatus(rec.Status)]; ok {
				count++
			}
			return nil
		})
	})
	return count, err
}

// ListActiveTasks returns tasks still PENDING or DISPATCHED.
func (s *BoltTaskStore) ListActiveTasks() ([]*types.Task, error) {
	return s.ListTasks(ListFilter{
		Statuses: []types.TaskStatus{types.TaskPending, types.TaskDispatched},
	})
}

// BoltUserStore implements UserStore using BoltDB
type BoltUserStore struct {
	db *bolt.DB
}

// OpenUserStore opens (or creates) the user database at path.
func OpenUserStore(path string) (*BoltUserStore, error) {
	db, err := openBolt(path, bucketUsers)
	if err != nil {
		return nil, err
	}
	return &BoltUserStore{db: db}, nil
}

// Close closes the database
func (s *BoltUserStore) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new user; duplicates are rejected.
func (s *BoltUserStore) CreateUser(user *types.User) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		if b.Get([]byte(user.Username)) != nil {
			return fmt.Errorf("user %s: %w", user.Username, ErrExists)
		}
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return b.Put([]byte(user.Username), data)
	})
}

// GetUser fetches a user by name.
func (s *BoltUserStore) GetUser(username string) (*types.User, error) {
	var user types.User
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		data := b.Get([]byte(username))
		if data == nil {
			return fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return json.Unmarshal(data, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
