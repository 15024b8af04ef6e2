// Package external defines the foreign task-exchange format and the
// adapter between it and the internal task model. The format mirrors
// common tracker exports: task_id/name/details instead of
// id/title/description, tags instead of a category reference, and a
// textual repeat pattern.
package external

import (
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/chore/internal/core/task"
)

// Task is a single task in the foreign exchange format.
type Task struct {
	TaskID        string   `json:"task_id"`
	Name          string   `json:"name"`
	Details       string   `json:"details,omitempty"`
	Priority      string   `json:"priority,omitempty"` // low, normal, high, urgent
	Deadline      string   `json:"deadline,omitempty"` // YYYY-MM-DD
	Tags          []string `json:"tags,omitempty"`
	IsCompleted   bool     `json:"is_completed"`
	Created       string   `json:"created"`
	Modified      string   `json:"modified"`
	RepeatPattern string   `json:"repeat_pattern,omitempty"` // daily, weekly, monthly
}

// CategoryResolver maps a foreign tag to a live category id. The
// second result reports whether the tag named a known category.
type CategoryResolver func(name string) (id string, ok bool)

// Adapt converts a foreign task into the internal model. The first tag
// naming a known category becomes the task's category; remaining tags
// are dropped. An unparsable deadline is treated as absent, matching
// the tolerant import behavior of typical tracker exports.
func Adapt(ext Task, resolve CategoryResolver) (task.Task, error) {
	if ext.TaskID == "" {
		return task.Task{}, fmt.Errorf("external task has no task_id")
	}
	if err := task.ValidateTitle(ext.Name); err != nil {
		return task.Task{}, fmt.Errorf("external task %s: %w", ext.TaskID, err)
	}

	createdAt, err := parseTimestamp(ext.Created)
	if err != nil {
		return task.Task{}, fmt.Errorf("external task %s: created: %w", ext.TaskID, err)
	}
	updatedAt, err := parseTimestamp(ext.Modified)
	if err != nil {
		return task.Task{}, fmt.Errorf("external task %s: modified: %w", ext.TaskID, err)
	}

	var dueDate *task.Date
	if ext.Deadline != "" {
		if d, err := task.ParseDate(ext.Deadline); err == nil {
			dueDate = &d
		}
	}

	var categoryID string
	if resolve != nil {
		for _, tag := range ext.Tags {
			if id, ok := resolve(tag); ok {
				categoryID = id
				break
			}
		}
	}

	status := task.StatusOpen
	var completedAt *time.Time
	if ext.IsCompleted {
		status = task.StatusDone
		completedAt = &updatedAt
	}

	return task.Task{
		ID:          ext.TaskID,
		Title:       strings.TrimSpace(ext.Name),
		Description: ext.Details,
		Status:      status,
		DueDate:     dueDate,
		CategoryID:  categoryID,
		Recurrence:  mapRepeatPattern(ext.RepeatPattern),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		CompletedAt: completedAt,
	}, nil
}

// ReverseAdapt converts an internal task back into the foreign format.
// categoryName is the resolved name of the task's category, or empty
// for uncategorized tasks.
func ReverseAdapt(t task.Task, categoryName string) Task {
	var tags []string
	if categoryName != "" {
		tags = []string{categoryName}
	}

	var deadline string
	if t.DueDate != nil {
		deadline = t.DueDate.String()
	}

	return Task{
		TaskID:        t.ID,
		Name:          t.Title,
		Details:       t.Description,
		Priority:      "normal",
		Deadline:      deadline,
		Tags:          tags,
		IsCompleted:   t.Status == task.StatusDone,
		Created:       t.CreatedAt.Format(time.RFC3339),
		Modified:      t.UpdatedAt.Format(time.RFC3339),
		RepeatPattern: mapRecurrence(t.Recurrence),
	}
}

func mapRepeatPattern(pattern string) task.Recurrence {
	switch strings.ToLower(pattern) {
	case "daily":
		return task.RecurrenceDaily
	case "weekly":
		return task.RecurrenceWeekly
	case "monthly":
		return task.RecurrenceMonthly
	}
	return task.RecurrenceNone
}

func mapRecurrence(r task.Recurrence) string {
	if r == task.RecurrenceNone || r == "" {
		return ""
	}
	return string(r)
}

// parseTimestamp accepts RFC 3339 timestamps as well as the
// zone-less ISO form some exporters emit.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
