package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/core/styles"
	"github.com/colonyops/chore/internal/core/task"
	"github.com/colonyops/chore/pkg/iojson"
)

// LsCmd implements the chore ls command.
type LsCmd struct {
	flags *Flags
	app   *chore.App

	status     string
	category   string
	due        string
	search     string
	jsonOutput bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *chore.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "chore ls [--status <status>] [--category <name>] [--due <bucket>] [--search <text>] [--json]",
		Description: `Displays a table of tasks ordered by due date; tasks without a due
date sort last. All filters combine with AND.

Examples:
  chore ls
  chore ls --status open --due overdue
  chore ls --category Home --search rent
  chore ls --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (open, done)",
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "filter by category name or id",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "filter by due bucket (today, week, overdue)",
				Destination: &cmd.due,
			},
			&cli.StringFlag{
				Name:        "search",
				Usage:       "case-insensitive substring match on title",
				Destination: &cmd.search,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	filter := task.Filter{Search: cmd.search}

	if cmd.status != "" {
		filter.Status = task.Status(cmd.status)
		if !filter.Status.IsValid() {
			return fmt.Errorf("invalid status %q: must be open or done", cmd.status)
		}
	}

	if cmd.category != "" {
		id, err := resolveCategory(cmd.app, cmd.category)
		if err != nil {
			return err
		}
		filter.CategoryID = id
	}

	if cmd.due != "" {
		filter.Due = task.DueBucket(cmd.due)
		if !filter.Due.IsValid() {
			return fmt.Errorf("invalid due bucket %q: must be today, week, or overdue", cmd.due)
		}
	}

	tasks := cmd.app.Tasks.Filter(filter)

	if cmd.jsonOutput {
		for _, t := range tasks {
			if err := iojson.WriteLine(c.Root().Writer, t); err != nil {
				return err
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "No tasks found")
		return nil
	}

	today := task.Today()

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\t \tTITLE\tDUE\tCATEGORY\tRECUR")

	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID),
			statusIcon(t),
			titleCell(t),
			dueCell(t, today),
			categoryCell(cmd.app, t),
			recurCell(t),
		)
	}

	return w.Flush()
}

func statusIcon(t task.Task) string {
	if t.Status == task.StatusDone {
		return styles.Done.Render(styles.IconDone)
	}
	return styles.IconOpen
}

func titleCell(t task.Task) string {
	if t.Status == task.StatusDone {
		return styles.Muted.Render(t.Title)
	}
	return t.Title
}

func dueCell(t task.Task, today task.Date) string {
	if t.DueDate == nil {
		return "-"
	}
	if t.IsOverdue(today) {
		return styles.Overdue.Render(t.DueDate.String())
	}
	if t.IsDueOn(today) {
		return styles.Warning.Render(t.DueDate.String())
	}
	return t.DueDate.String()
}

func categoryCell(app *chore.App, t task.Task) string {
	if t.CategoryID == "" {
		return "-"
	}
	cat, err := app.Categories.Get(t.CategoryID)
	if err != nil {
		// dangling reference, rendered as uncategorized
		return "-"
	}
	return styles.CategoryDot(cat.Color) + " " + cat.Name
}

func recurCell(t task.Task) string {
	if t.Recurrence == task.RecurrenceNone || t.Recurrence == "" {
		return "-"
	}
	if t.Interval() > 1 {
		return fmt.Sprintf("%s x%d", t.Recurrence, t.Interval())
	}
	return string(t.Recurrence)
}
