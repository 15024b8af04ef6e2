package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func datePtr(d Date) *Date { return &d }

func TestValidateTitle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateTitle("Einkaufen gehen"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, ValidateTitle(""), ErrEmptyTitle)
		assert.ErrorIs(t, ValidateTitle("   "), ErrEmptyTitle)
	})

	t.Run("too long", func(t *testing.T) {
		assert.ErrorIs(t, ValidateTitle(strings.Repeat("a", MaxTitleLen+1)), ErrTitleTooLong)
	})

	t.Run("exactly max runes", func(t *testing.T) {
		assert.NoError(t, ValidateTitle(strings.Repeat("ä", MaxTitleLen)))
	})
}

func TestTask_NextDueDate(t *testing.T) {
	completedOn := mustDate(t, "2025-12-20")

	tests := []struct {
		name     string
		task     Task
		want     string
		wantNext bool
	}{
		{
			name:     "none never recurs",
			task:     Task{Recurrence: RecurrenceNone, DueDate: datePtr(mustDate(t, "2025-12-18"))},
			wantNext: false,
		},
		{
			name:     "daily",
			task:     Task{Recurrence: RecurrenceDaily, DueDate: datePtr(mustDate(t, "2025-12-18"))},
			want:     "2025-12-19",
			wantNext: true,
		},
		{
			name:     "weekly",
			task:     Task{Recurrence: RecurrenceWeekly, DueDate: datePtr(mustDate(t, "2025-12-18"))},
			want:     "2025-12-25",
			wantNext: true,
		},
		{
			name:     "monthly clamps to last valid day",
			task:     Task{Recurrence: RecurrenceMonthly, DueDate: datePtr(mustDate(t, "2025-01-31"))},
			want:     "2025-02-28",
			wantNext: true,
		},
		{
			name:     "no due date advances from completion date",
			task:     Task{Recurrence: RecurrenceWeekly},
			want:     "2025-12-27",
			wantNext: true,
		},
		{
			name: "interval multiplies the step",
			task: Task{
				Recurrence:         RecurrenceDaily,
				RecurrenceInterval: 3,
				DueDate:            datePtr(mustDate(t, "2025-12-18")),
			},
			want:     "2025-12-21",
			wantNext: true,
		},
		{
			name: "end date stops the chain",
			task: Task{
				Recurrence:        RecurrenceWeekly,
				DueDate:           datePtr(mustDate(t, "2025-12-18")),
				RecurrenceEndDate: datePtr(mustDate(t, "2025-12-24")),
			},
			wantNext: false,
		},
		{
			name: "end date on the next occurrence still spawns",
			task: Task{
				Recurrence:        RecurrenceWeekly,
				DueDate:           datePtr(mustDate(t, "2025-12-18")),
				RecurrenceEndDate: datePtr(mustDate(t, "2025-12-25")),
			},
			want:     "2025-12-25",
			wantNext: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.task.NextDueDate(completedOn)
			assert.Equal(t, tt.wantNext, ok)
			if tt.wantNext {
				assert.Equal(t, tt.want, next.String())
			}
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	today := mustDate(t, "2025-06-10")

	t.Run("past due and open", func(t *testing.T) {
		task := Task{Status: StatusOpen, DueDate: datePtr(mustDate(t, "2025-06-09"))}
		assert.True(t, task.IsOverdue(today))
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		task := Task{Status: StatusOpen, DueDate: datePtr(today)}
		assert.False(t, task.IsOverdue(today))
	})

	t.Run("done is never overdue", func(t *testing.T) {
		task := Task{Status: StatusDone, DueDate: datePtr(mustDate(t, "2020-01-01"))}
		assert.False(t, task.IsOverdue(today))
	})

	t.Run("undated is never overdue", func(t *testing.T) {
		task := Task{Status: StatusOpen}
		assert.False(t, task.IsOverdue(today))
	})
}

func TestTask_Interval(t *testing.T) {
	assert.Equal(t, 1, Task{}.Interval())
	assert.Equal(t, 1, Task{RecurrenceInterval: -2}.Interval())
	assert.Equal(t, 4, Task{RecurrenceInterval: 4}.Interval())
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusOpen.IsValid())
	assert.True(t, StatusDone.IsValid())
	assert.False(t, Status("archived").IsValid())
}

func TestRecurrence_IsValid(t *testing.T) {
	for _, r := range []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly} {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, Recurrence("yearly").IsValid())
}

func TestTask_IsDueWithinWeek(t *testing.T) {
	today := mustDate(t, "2025-06-10")

	tests := []struct {
		due  string
		want bool
	}{
		{"2025-06-09", false},
		{"2025-06-10", true},
		{"2025-06-16", true},
		{"2025-06-17", false},
	}

	for _, tt := range tests {
		t.Run(tt.due, func(t *testing.T) {
			task := Task{DueDate: datePtr(mustDate(t, tt.due))}
			assert.Equal(t, tt.want, task.IsDueWithinWeek(today))
		})
	}
}
