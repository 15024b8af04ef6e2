package commands

import (
	"fmt"
	"strings"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/core/category"
	"github.com/colonyops/chore/internal/core/task"
)

// resolveTaskID expands a full id or an unambiguous id prefix to a
// task id. Prefixes shorter than 4 characters are rejected to avoid
// accidental matches.
func resolveTaskID(app *chore.App, arg string) (string, error) {
	if _, err := app.Tasks.Get(arg); err == nil {
		return arg, nil
	}

	if len(arg) < 4 {
		return "", fmt.Errorf("%w: %s (id prefixes need at least 4 characters)", task.ErrNotFound, arg)
	}

	var matches []string
	for _, t := range app.Tasks.List() {
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", task.ErrNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// resolveCategory accepts a category name, id, or id prefix and
// returns the category id.
func resolveCategory(app *chore.App, arg string) (string, error) {
	if cat, ok := app.Categories.GetByName(arg); ok {
		return cat.ID, nil
	}
	if _, err := app.Categories.Get(arg); err == nil {
		return arg, nil
	}

	var matches []string
	for _, c := range app.Categories.List() {
		if strings.HasPrefix(c.ID, arg) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", category.ErrNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("category %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// categoryName returns the display name for a task's category
// reference, or "-" when unset or dangling.
func categoryName(app *chore.App, id string) string {
	if id == "" {
		return "-"
	}
	cat, err := app.Categories.Get(id)
	if err != nil {
		return "-"
	}
	return cat.Name
}

// shortID truncates an id for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// parseDueDate parses a --due / --until flag value. Accepts YYYY-MM-DD
// plus the "today" and "tomorrow" shorthands.
func parseDueDate(s string) (task.Date, error) {
	switch strings.ToLower(s) {
	case "today":
		return task.Today(), nil
	case "tomorrow":
		return task.Today().AddDays(1), nil
	}
	return task.ParseDate(s)
}
