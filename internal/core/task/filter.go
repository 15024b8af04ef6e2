package task

import (
	"slices"
	"strings"
)

// DueBucket is a date-relative filter classification.
type DueBucket string

const (
	// DueAny applies no due-date constraint.
	DueAny DueBucket = ""
	// DueToday matches tasks due exactly today.
	DueToday DueBucket = "today"
	// DueThisWeek matches tasks due between today and today+6, inclusive.
	DueThisWeek DueBucket = "week"
	// DueOverdue matches open tasks due strictly before today.
	DueOverdue DueBucket = "overdue"
)

// IsValid reports whether the bucket is a known value.
func (b DueBucket) IsValid() bool {
	switch b {
	case DueAny, DueToday, DueThisWeek, DueOverdue:
		return true
	}
	return false
}

// Filter selects tasks by independent criteria combined with AND.
// Zero values mean "any".
type Filter struct {
	Status     Status    // empty means all statuses
	CategoryID string    // empty means all categories
	Due        DueBucket // DueAny means no due constraint
	Search     string    // case-insensitive substring match on title
}

// Matches reports whether t satisfies every supplied criterion,
// evaluating due buckets relative to today.
func (f Filter) Matches(t Task, today Date) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}

	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}

	switch f.Due {
	case DueToday:
		if !t.IsDueOn(today) {
			return false
		}
	case DueThisWeek:
		if !t.IsDueWithinWeek(today) {
			return false
		}
	case DueOverdue:
		if !t.IsOverdue(today) {
			return false
		}
	}

	if f.Search != "" {
		query := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(t.Title), query) {
			return false
		}
	}

	return true
}

// SortByDue sorts tasks in place: due date ascending with undated tasks
// after all dated ones, ties broken by creation time ascending. The
// sort is stable.
func SortByDue(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		switch {
		case a.DueDate == nil && b.DueDate != nil:
			return 1
		case a.DueDate != nil && b.DueDate == nil:
			return -1
		case a.DueDate != nil && b.DueDate != nil:
			if c := a.DueDate.Time().Compare(b.DueDate.Time()); c != 0 {
				return c
			}
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
