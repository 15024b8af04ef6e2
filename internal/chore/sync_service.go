package chore

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/colonyops/chore/internal/core/task"
	"github.com/colonyops/chore/internal/external"
)

// MergeStrategy decides what happens when an imported task's id
// collides with a live one.
type MergeStrategy string

const (
	// MergeSkip leaves the existing task untouched and skips the import.
	MergeSkip MergeStrategy = "skip"
	// MergeOverwrite replaces the existing task with the imported one.
	MergeOverwrite MergeStrategy = "overwrite"
	// MergeCopy imports under a freshly assigned id, keeping both.
	MergeCopy MergeStrategy = "copy"
)

// IsValid reports whether the strategy is a known value.
func (m MergeStrategy) IsValid() bool {
	switch m {
	case MergeSkip, MergeOverwrite, MergeCopy:
		return true
	}
	return false
}

// ImportStats summarizes an import run.
type ImportStats struct {
	TotalFetched int `json:"total_fetched"`
	Imported     int `json:"imported"`
	Skipped      int `json:"skipped"`
	Errors       int `json:"errors"`
}

// Import merges foreign tasks into the live collection. Tasks that
// fail adaptation are counted as errors and skipped; the rest are
// merged per the strategy and persisted in a single save.
func (s *TaskService) Import(items []external.Task, strategy MergeStrategy) (ImportStats, error) {
	if !strategy.IsValid() {
		return ImportStats{}, fmt.Errorf("invalid merge strategy %q", strategy)
	}

	stats := ImportStats{TotalFetched: len(items)}

	resolve := func(name string) (string, bool) {
		cat, ok := s.cats.GetByName(name)
		return cat.ID, ok
	}

	next := slices.Clone(s.tasks)

	for _, ext := range items {
		t, err := external.Adapt(ext, resolve)
		if err != nil {
			s.log.Warn().Err(err).Str("task_id", ext.TaskID).Msg("skipping unimportable task")
			stats.Errors++
			continue
		}

		idx := slices.IndexFunc(next, func(existing task.Task) bool {
			return existing.ID == t.ID
		})

		switch {
		case idx < 0:
			next = append(next, t)
			stats.Imported++
		case strategy == MergeSkip:
			stats.Skipped++
		case strategy == MergeOverwrite:
			next[idx] = t
			stats.Imported++
		case strategy == MergeCopy:
			t.ID = uuid.NewString()
			next = append(next, t)
			stats.Imported++
		}
	}

	if stats.Imported > 0 {
		if err := s.store.Save(next); err != nil {
			return ImportStats{}, err
		}
		s.tasks = next
	}

	s.log.Debug().
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("import finished")

	return stats, nil
}

// Export converts tasks to the foreign exchange format. With no ids,
// the full collection is exported in due date order.
func (s *TaskService) Export(ids []string) ([]external.Task, error) {
	var tasks []task.Task
	if len(ids) == 0 {
		tasks = s.List()
	} else {
		for _, id := range ids {
			t, err := s.Get(id)
			if err != nil {
				return nil, fmt.Errorf("export %s: %w", id, err)
			}
			tasks = append(tasks, t)
		}
	}

	out := make([]external.Task, 0, len(tasks))
	for _, t := range tasks {
		var categoryName string
		if t.CategoryID != "" {
			if cat, err := s.cats.Get(t.CategoryID); err == nil {
				categoryName = cat.Name
			}
		}
		out = append(out, external.ReverseAdapt(t, categoryName))
	}

	return out, nil
}
