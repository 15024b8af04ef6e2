package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chore/internal/core/task"
)

func testTask(id, title string) task.Task {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	return task.Task{
		ID:         id,
		Title:      title,
		Status:     task.StatusOpen,
		Recurrence: task.RecurrenceNone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestTaskStore_LoadMissingFile(t *testing.T) {
	store := NewTaskStore(filepath.Join(t.TempDir(), "tasks.json"))

	tasks, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
}

func TestTaskStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))

	tasks, err := NewTaskStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_RoundTrip(t *testing.T) {
	store := NewTaskStore(filepath.Join(t.TempDir(), "tasks.json"))

	due := task.NewDate(2025, time.June, 15)
	completed := time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)

	want := []task.Task{
		testTask("a", "Einkaufen"),
		func() task.Task {
			tk := testTask("b", "Wäsche waschen")
			tk.Status = task.StatusDone
			tk.Description = "Buntwäsche bei 40 Grad"
			tk.DueDate = &due
			tk.CategoryID = "cat-1"
			tk.Recurrence = task.RecurrenceWeekly
			tk.RecurrenceInterval = 2
			tk.CompletedAt = &completed
			return tk
		}(),
	}

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTaskStore_SaveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewTaskStore(path)

	require.NoError(t, store.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestTaskStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"not": "an array"`},
		{"wrong shape", `{"tasks": []}`},
		{
			"unknown field",
			`[{"id":"a","title":"x","status":"open","recurrence":"none","created_at":"2025-06-01T10:00:00Z","updated_at":"2025-06-01T10:00:00Z","priority":3}]`,
		},
		{
			"missing id",
			`[{"title":"x","status":"open","recurrence":"none","created_at":"2025-06-01T10:00:00Z","updated_at":"2025-06-01T10:00:00Z"}]`,
		},
		{
			"missing title",
			`[{"id":"a","status":"open","recurrence":"none","created_at":"2025-06-01T10:00:00Z","updated_at":"2025-06-01T10:00:00Z"}]`,
		},
		{
			"invalid status",
			`[{"id":"a","title":"x","status":"pending","recurrence":"none","created_at":"2025-06-01T10:00:00Z","updated_at":"2025-06-01T10:00:00Z"}]`,
		},
		{
			"invalid recurrence",
			`[{"id":"a","title":"x","status":"open","recurrence":"yearly","created_at":"2025-06-01T10:00:00Z","updated_at":"2025-06-01T10:00:00Z"}]`,
		},
		{
			"missing created_at",
			`[{"id":"a","title":"x","status":"open","recurrence":"none","updated_at":"2025-06-01T10:00:00Z"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewTaskStore(path).Load()
			require.Error(t, err)

			var corrupt *CorruptError
			assert.ErrorAs(t, err, &corrupt)
			assert.Equal(t, path, corrupt.Path)
		})
	}
}

func TestTaskStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	store := NewTaskStore(path)

	require.NoError(t, store.Save([]task.Task{testTask("a", "Einkaufen")}))

	tasks, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewTaskStore(filepath.Join(dir, "tasks.json"))

	require.NoError(t, store.Save([]task.Task{testTask("a", "Einkaufen")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
}
