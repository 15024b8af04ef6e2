package chore

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/chore/internal/core/task"
	"github.com/colonyops/chore/internal/store/jsonfile"
)

// TaskService owns the live task collection: CRUD, completion with
// recurrence spawning, filtering, and stats. Mutations persist the
// full collection before committing it in memory.
type TaskService struct {
	store *jsonfile.TaskStore
	cats  *CategoryService
	log   zerolog.Logger
	now   func() time.Time
	tasks []task.Task
}

// NewTaskService loads the task collection from the store. The
// category service is consulted for reference validity on writes.
func NewTaskService(store *jsonfile.TaskStore, cats *CategoryService, log zerolog.Logger) (*TaskService, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	return &TaskService{
		store: store,
		cats:  cats,
		log:   log.With().Str("component", "task-service").Logger(),
		now:   time.Now,
		tasks: tasks,
	}, nil
}

// CreateTask holds the fields for a new task. Zero values for the
// optional fields mean absent.
type CreateTask struct {
	Title              string
	Description        string
	DueDate            *task.Date
	CategoryID         string
	Recurrence         task.Recurrence
	RecurrenceInterval int
	RecurrenceEndDate  *task.Date
}

// Create validates and persists a new open task.
func (s *TaskService) Create(p CreateTask) (task.Task, error) {
	if err := task.ValidateTitle(p.Title); err != nil {
		return task.Task{}, err
	}

	if err := s.checkCategory(p.CategoryID); err != nil {
		return task.Task{}, err
	}

	recurrence := p.Recurrence
	if recurrence == "" {
		recurrence = task.RecurrenceNone
	}
	if !recurrence.IsValid() {
		return task.Task{}, fmt.Errorf("invalid recurrence %q", p.Recurrence)
	}

	now := s.now()
	t := task.Task{
		ID:                 uuid.NewString(),
		Title:              capitalizeFirst(strings.TrimSpace(p.Title)),
		Description:        capitalizeSentences(strings.TrimSpace(p.Description)),
		Status:             task.StatusOpen,
		DueDate:            p.DueDate,
		CategoryID:         p.CategoryID,
		Recurrence:         recurrence,
		RecurrenceInterval: p.RecurrenceInterval,
		RecurrenceEndDate:  p.RecurrenceEndDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	next := append(slices.Clone(s.tasks), t)
	if err := s.store.Save(next); err != nil {
		return task.Task{}, err
	}
	s.tasks = next

	s.log.Debug().Str("id", t.ID).Str("title", t.Title).Msg("task created")
	return t, nil
}

// UpdateTask holds a partial update; nil fields are unchanged. The
// Clear flags remove the corresponding optional field.
type UpdateTask struct {
	Title              *string
	Description        *string
	DueDate            *task.Date
	ClearDueDate       bool
	CategoryID         *string // empty string clears the reference
	Recurrence         *task.Recurrence
	RecurrenceInterval *int
	RecurrenceEndDate  *task.Date
	ClearRecurrenceEnd bool
}

// Update applies a partial update, validating only the supplied fields.
func (s *TaskService) Update(id string, patch UpdateTask) (task.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.Task{}, task.ErrNotFound
	}

	next := slices.Clone(s.tasks)
	t := next[idx]

	if patch.Title != nil {
		if err := task.ValidateTitle(*patch.Title); err != nil {
			return task.Task{}, err
		}
		t.Title = capitalizeFirst(strings.TrimSpace(*patch.Title))
	}

	if patch.Description != nil {
		t.Description = capitalizeSentences(strings.TrimSpace(*patch.Description))
	}

	if patch.ClearDueDate {
		t.DueDate = nil
	} else if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}

	if patch.CategoryID != nil {
		if err := s.checkCategory(*patch.CategoryID); err != nil {
			return task.Task{}, err
		}
		t.CategoryID = *patch.CategoryID
	}

	if patch.Recurrence != nil {
		if !patch.Recurrence.IsValid() {
			return task.Task{}, fmt.Errorf("invalid recurrence %q", *patch.Recurrence)
		}
		t.Recurrence = *patch.Recurrence
	}

	if patch.RecurrenceInterval != nil {
		t.RecurrenceInterval = *patch.RecurrenceInterval
	}

	if patch.ClearRecurrenceEnd {
		t.RecurrenceEndDate = nil
	} else if patch.RecurrenceEndDate != nil {
		t.RecurrenceEndDate = patch.RecurrenceEndDate
	}

	t.UpdatedAt = s.now()

	next[idx] = t
	if err := s.store.Save(next); err != nil {
		return task.Task{}, err
	}
	s.tasks = next

	s.log.Debug().Str("id", t.ID).Msg("task updated")
	return t, nil
}

// Delete removes a task.
func (s *TaskService) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.ErrNotFound
	}

	next := slices.Delete(slices.Clone(s.tasks), idx, idx+1)
	if err := s.store.Save(next); err != nil {
		return err
	}
	s.tasks = next

	s.log.Debug().Str("id", id).Msg("task deleted")
	return nil
}

// Complete marks a task done. A recurring task spawns exactly one open
// successor with the advanced due date; both are persisted in the same
// save. The successor is nil for non-recurring tasks, or when the
// recurrence end date has been reached.
func (s *TaskService) Complete(id string) (task.Task, *task.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.Task{}, nil, task.ErrNotFound
	}

	next := slices.Clone(s.tasks)
	t := next[idx]

	now := s.now()
	t.Status = task.StatusDone
	t.CompletedAt = &now
	t.UpdatedAt = now
	next[idx] = t

	var spawned *task.Task
	if nextDue, ok := t.NextDueDate(task.DateOf(now)); ok {
		successor := task.Task{
			ID:                 uuid.NewString(),
			Title:              t.Title,
			Description:        t.Description,
			Status:             task.StatusOpen,
			DueDate:            &nextDue,
			CategoryID:         t.CategoryID,
			Recurrence:         t.Recurrence,
			RecurrenceInterval: t.RecurrenceInterval,
			RecurrenceEndDate:  t.RecurrenceEndDate,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		next = append(next, successor)
		spawned = &successor
	}

	if err := s.store.Save(next); err != nil {
		return task.Task{}, nil, err
	}
	s.tasks = next

	evt := s.log.Debug().Str("id", t.ID)
	if spawned != nil {
		evt = evt.Str("spawned", spawned.ID).Stringer("next_due", *spawned.DueDate)
	}
	evt.Msg("task completed")

	return t, spawned, nil
}

// Reopen marks a done task open again. An already-spawned recurrence
// successor is left alone; recurrence triggers only at completion.
func (s *TaskService) Reopen(id string) (task.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.Task{}, task.ErrNotFound
	}

	next := slices.Clone(s.tasks)
	t := next[idx]
	t.Status = task.StatusOpen
	t.CompletedAt = nil
	t.UpdatedAt = s.now()
	next[idx] = t

	if err := s.store.Save(next); err != nil {
		return task.Task{}, err
	}
	s.tasks = next

	s.log.Debug().Str("id", t.ID).Msg("task reopened")
	return t, nil
}

// Toggle completes an open task or reopens a done one. The spawned
// successor, if any, follows the Complete semantics.
func (s *TaskService) Toggle(id string) (task.Task, *task.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.Task{}, nil, task.ErrNotFound
	}

	if s.tasks[idx].Status == task.StatusOpen {
		return s.Complete(id)
	}

	t, err := s.Reopen(id)
	return t, nil, err
}

// Get returns a task by id.
func (s *TaskService) Get(id string) (task.Task, error) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.tasks[idx], nil
	}
	return task.Task{}, task.ErrNotFound
}

// List returns all tasks ordered by due date (undated last, ties by
// creation time).
func (s *TaskService) List() []task.Task {
	return s.Filter(task.Filter{})
}

// Filter returns the tasks matching every supplied criterion, in due
// date order. Pure read; no persistence side effect.
func (s *TaskService) Filter(f task.Filter) []task.Task {
	today := task.DateOf(s.now())

	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Matches(t, today) {
			out = append(out, t)
		}
	}

	task.SortByDue(out)
	return out
}

// Stats summarizes the live collection.
type Stats struct {
	Total   int `json:"total"`
	Open    int `json:"open"`
	Done    int `json:"done"`
	Overdue int `json:"overdue"`
}

// Stats computes counts over the full live collection. Overdue uses
// the same bucket definition as Filter.
func (s *TaskService) Stats() Stats {
	today := task.DateOf(s.now())

	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		switch t.Status {
		case task.StatusOpen:
			st.Open++
		case task.StatusDone:
			st.Done++
		}
		if t.IsOverdue(today) {
			st.Overdue++
		}
	}

	return st
}

func (s *TaskService) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}

// checkCategory validates a category reference at write time. An
// empty id means uncategorized and is always valid.
func (s *TaskService) checkCategory(id string) error {
	if id == "" {
		return nil
	}
	if _, err := s.cats.Get(id); err != nil {
		return fmt.Errorf("%w: %s", task.ErrUnknownCategory, id)
	}
	return nil
}
