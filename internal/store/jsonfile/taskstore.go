package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/colonyops/chore/internal/core/task"
)

// TaskStore persists the ordered task collection in a single JSON file.
type TaskStore struct {
	path string
	mu   sync.RWMutex
}

// NewTaskStore creates a task store backed by the given file path.
func NewTaskStore(path string) *TaskStore {
	return &TaskStore{path: path}
}

// Load reads the full task collection. A missing or empty file loads
// as an empty collection; malformed or schema-violating content fails
// with a *CorruptError.
func (s *TaskStore) Load() ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []task.Task{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var tasks []task.Task
	if err := dec.Decode(&tasks); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	for i, t := range tasks {
		if err := validateTaskRecord(t); err != nil {
			return nil, &CorruptError{Path: s.path, Err: fmt.Errorf("task %d: %w", i, err)}
		}
	}

	return tasks, nil
}

// Save overwrites the backing file with the full collection.
func (s *TaskStore) Save(tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	return writeAtomic(s.path, append(data, '\n'))
}

// validateTaskRecord enforces the task schema on load. Records with
// missing required fields or unknown enum values are corrupt, not
// silently defaulted.
func validateTaskRecord(t task.Task) error {
	switch {
	case t.ID == "":
		return fmt.Errorf("missing id")
	case t.Title == "":
		return fmt.Errorf("missing title")
	case !t.Status.IsValid():
		return fmt.Errorf("invalid status %q", t.Status)
	case !t.Recurrence.IsValid():
		return fmt.Errorf("invalid recurrence %q", t.Recurrence)
	case t.CreatedAt.IsZero():
		return fmt.Errorf("missing created_at")
	case t.UpdatedAt.IsZero():
		return fmt.Errorf("missing updated_at")
	}
	return nil
}
