package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chore/internal/core/task"
)

func resolveHousehold(name string) (string, bool) {
	if name == "Haushalt" {
		return "cat-home", true
	}
	return "", false
}

func TestAdapt(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		got, err := Adapt(Task{
			TaskID:        "ext-1",
			Name:          "Einkaufen gehen",
			Details:       "Milch und Brot",
			Priority:      "high",
			Deadline:      "2025-06-15",
			Tags:          []string{"dringend", "Haushalt"},
			IsCompleted:   false,
			Created:       "2025-06-01T08:00:00Z",
			Modified:      "2025-06-02T09:00:00Z",
			RepeatPattern: "Weekly",
		}, resolveHousehold)
		require.NoError(t, err)

		assert.Equal(t, "ext-1", got.ID)
		assert.Equal(t, "Einkaufen gehen", got.Title)
		assert.Equal(t, "Milch und Brot", got.Description)
		assert.Equal(t, task.StatusOpen, got.Status)
		require.NotNil(t, got.DueDate)
		assert.Equal(t, "2025-06-15", got.DueDate.String())
		assert.Equal(t, "cat-home", got.CategoryID)
		assert.Equal(t, task.RecurrenceWeekly, got.Recurrence)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("completed task gets completed_at from modified", func(t *testing.T) {
		got, err := Adapt(Task{
			TaskID:      "ext-2",
			Name:        "Fertig",
			IsCompleted: true,
			Created:     "2025-06-01T08:00:00Z",
			Modified:    "2025-06-02T09:00:00Z",
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, task.StatusDone, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, got.UpdatedAt, *got.CompletedAt)
	})

	t.Run("zone-less timestamps are accepted", func(t *testing.T) {
		got, err := Adapt(Task{
			TaskID:   "ext-3",
			Name:     "Altbestand",
			Created:  "2025-06-01T08:00:00",
			Modified: "2025-06-01T08:00:00",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC), got.CreatedAt)
	})

	t.Run("unparsable deadline is dropped", func(t *testing.T) {
		got, err := Adapt(Task{
			TaskID:   "ext-4",
			Name:     "Ohne Termin",
			Deadline: "next tuesday",
			Created:  "2025-06-01T08:00:00Z",
			Modified: "2025-06-01T08:00:00Z",
		}, nil)
		require.NoError(t, err)
		assert.Nil(t, got.DueDate)
	})

	t.Run("unknown repeat pattern maps to none", func(t *testing.T) {
		got, err := Adapt(Task{
			TaskID:        "ext-5",
			Name:          "Einmalig",
			Created:       "2025-06-01T08:00:00Z",
			Modified:      "2025-06-01T08:00:00Z",
			RepeatPattern: "fortnightly",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, task.RecurrenceNone, got.Recurrence)
	})

	t.Run("unresolvable tags leave the task uncategorized", func(t *testing.T) {
		got, err := Adapt(Task{
			TaskID:   "ext-6",
			Name:     "Ungetaggt",
			Tags:     []string{"foo", "bar"},
			Created:  "2025-06-01T08:00:00Z",
			Modified: "2025-06-01T08:00:00Z",
		}, resolveHousehold)
		require.NoError(t, err)
		assert.Empty(t, got.CategoryID)
	})

	t.Run("rejects missing task_id", func(t *testing.T) {
		_, err := Adapt(Task{Name: "X", Created: "2025-06-01T08:00:00Z", Modified: "2025-06-01T08:00:00Z"}, nil)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := Adapt(Task{TaskID: "ext-7", Created: "2025-06-01T08:00:00Z", Modified: "2025-06-01T08:00:00Z"}, nil)
		assert.ErrorIs(t, err, task.ErrEmptyTitle)
	})

	t.Run("rejects bad timestamps", func(t *testing.T) {
		_, err := Adapt(Task{TaskID: "ext-8", Name: "X", Created: "gestern", Modified: "2025-06-01T08:00:00Z"}, nil)
		assert.Error(t, err)
	})
}

func TestReverseAdapt(t *testing.T) {
	due := task.NewDate(2025, time.June, 15)
	created := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

	t.Run("categorized recurring task", func(t *testing.T) {
		got := ReverseAdapt(task.Task{
			ID:          "t-1",
			Title:       "Einkaufen gehen",
			Description: "Milch und Brot",
			Status:      task.StatusDone,
			DueDate:     &due,
			CategoryID:  "cat-home",
			Recurrence:  task.RecurrenceWeekly,
			CreatedAt:   created,
			UpdatedAt:   updated,
		}, "Haushalt")

		assert.Equal(t, Task{
			TaskID:        "t-1",
			Name:          "Einkaufen gehen",
			Details:       "Milch und Brot",
			Priority:      "normal",
			Deadline:      "2025-06-15",
			Tags:          []string{"Haushalt"},
			IsCompleted:   true,
			Created:       "2025-06-01T08:00:00Z",
			Modified:      "2025-06-02T09:00:00Z",
			RepeatPattern: "weekly",
		}, got)
	})

	t.Run("bare task", func(t *testing.T) {
		got := ReverseAdapt(task.Task{
			ID:        "t-2",
			Title:     "Keller aufräumen",
			Status:    task.StatusOpen,
			CreatedAt: created,
			UpdatedAt: created,
		}, "")

		assert.Empty(t, got.Deadline)
		assert.Nil(t, got.Tags)
		assert.Empty(t, got.RepeatPattern)
		assert.False(t, got.IsCompleted)
	})
}

func TestAdaptReverseAdaptRoundTrip(t *testing.T) {
	orig := Task{
		TaskID:        "rt-1",
		Name:          "Müll rausbringen",
		Priority:      "normal",
		Deadline:      "2025-07-01",
		Tags:          []string{"Haushalt"},
		Created:       "2025-06-01T08:00:00Z",
		Modified:      "2025-06-01T08:00:00Z",
		RepeatPattern: "weekly",
	}

	internal, err := Adapt(orig, resolveHousehold)
	require.NoError(t, err)

	back := ReverseAdapt(internal, "Haushalt")
	assert.Equal(t, orig, back)
}
