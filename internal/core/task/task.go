// Package task defines the task domain model: status and recurrence
// enums, due-date arithmetic, and filter predicates.
package task

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLen is the longest accepted task title, in runes.
const MaxTitleLen = 200

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("task not found")
	// ErrEmptyTitle is returned when a title is empty or whitespace-only.
	ErrEmptyTitle = errors.New("title must not be empty")
	// ErrTitleTooLong is returned when a title exceeds MaxTitleLen runes.
	ErrTitleTooLong = errors.New("title exceeds 200 characters")
	// ErrUnknownCategory is returned when a task references a category
	// that does not exist at the time of write.
	ErrUnknownCategory = errors.New("unknown category")
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusDone
}

// Recurrence is the rule by which a completed task spawns a successor.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// IsValid reports whether the recurrence is a known value.
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Task is a single todo item.
type Task struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Status             Status     `json:"status"`
	DueDate            *Date      `json:"due_date,omitempty"`
	CategoryID         string     `json:"category_id,omitempty"`
	Recurrence         Recurrence `json:"recurrence"`
	RecurrenceInterval int        `json:"recurrence_interval,omitempty"`
	RecurrenceEndDate  *Date      `json:"recurrence_end_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// ValidateTitle checks a task title against the empty and length rules.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) > MaxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

// Interval returns the recurrence interval, defaulting to 1.
func (t Task) Interval() int {
	if t.RecurrenceInterval < 1 {
		return 1
	}
	return t.RecurrenceInterval
}

// IsOverdue reports whether the task is past due on the given date.
// A done task is never overdue.
func (t Task) IsOverdue(today Date) bool {
	if t.Status == StatusDone || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(today)
}

// IsDueOn reports whether the task is due exactly on the given date.
func (t Task) IsDueOn(day Date) bool {
	return t.DueDate != nil && *t.DueDate == day
}

// IsDueWithinWeek reports whether the task is due between today and
// the following six days, inclusive.
func (t Task) IsDueWithinWeek(today Date) bool {
	if t.DueDate == nil {
		return false
	}
	end := today.AddDays(6)
	return !t.DueDate.Before(today) && !t.DueDate.After(end)
}

// NextDueDate computes the due date of the successor spawned when this
// task is completed. The date advances from the current due date, or
// from the completion date when no due date is set. It returns false
// when the task does not recur, or when the recurrence end date would
// be passed.
func (t Task) NextDueDate(completedOn Date) (Date, bool) {
	var from Date
	if t.DueDate != nil {
		from = *t.DueDate
	} else {
		from = completedOn
	}

	var next Date
	switch t.Recurrence {
	case RecurrenceDaily:
		next = from.AddDays(t.Interval())
	case RecurrenceWeekly:
		next = from.AddDays(7 * t.Interval())
	case RecurrenceMonthly:
		next = from.AddMonths(t.Interval())
	default:
		return Date{}, false
	}

	if t.RecurrenceEndDate != nil && next.After(*t.RecurrenceEndDate) {
		return Date{}, false
	}

	return next, true
}
