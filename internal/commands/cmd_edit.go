package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/core/task"
	"github.com/colonyops/chore/pkg/iojson"
)

// EditCmd implements the chore edit command.
type EditCmd struct {
	flags *Flags
	app   *chore.App

	title       string
	description string
	due         string
	clearDue    bool
	category    string
	noCategory  bool
	recur       string
	every       int
	until       string
	clearUntil  bool
	jsonOutput  bool
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags, app *chore.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a task",
		UsageText: "chore edit <id> [options]",
		Description: `Updates only the supplied fields of a task. The id may be a unique
prefix.

Examples:
  chore edit 4f2a --title "Water all the plants"
  chore edit 4f2a --due tomorrow
  chore edit 4f2a --clear-due --no-category`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "new description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "new due date (YYYY-MM-DD, today, tomorrow)",
				Destination: &cmd.due,
			},
			&cli.BoolFlag{
				Name:        "clear-due",
				Usage:       "remove the due date",
				Destination: &cmd.clearDue,
			},
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "new category name or id",
				Destination: &cmd.category,
			},
			&cli.BoolFlag{
				Name:        "no-category",
				Usage:       "remove the category reference",
				Destination: &cmd.noCategory,
			},
			&cli.StringFlag{
				Name:        "recur",
				Usage:       "new recurrence rule (none, daily, weekly, monthly)",
				Destination: &cmd.recur,
			},
			&cli.IntFlag{
				Name:        "every",
				Usage:       "new recurrence interval multiplier",
				Destination: &cmd.every,
			},
			&cli.StringFlag{
				Name:        "until",
				Usage:       "new recurrence end date (YYYY-MM-DD)",
				Destination: &cmd.until,
			},
			&cli.BoolFlag{
				Name:        "clear-until",
				Usage:       "remove the recurrence end date",
				Destination: &cmd.clearUntil,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the updated task as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore edit <id> [options]")
	}

	id, err := resolveTaskID(cmd.app, c.Args().Get(0))
	if err != nil {
		return err
	}

	patch := chore.UpdateTask{
		ClearDueDate:       cmd.clearDue,
		ClearRecurrenceEnd: cmd.clearUntil,
	}

	if c.IsSet("title") {
		patch.Title = &cmd.title
	}
	if c.IsSet("description") {
		patch.Description = &cmd.description
	}

	if cmd.due != "" {
		due, err := parseDueDate(cmd.due)
		if err != nil {
			return err
		}
		patch.DueDate = &due
	}

	switch {
	case cmd.noCategory:
		empty := ""
		patch.CategoryID = &empty
	case cmd.category != "":
		catID, err := resolveCategory(cmd.app, cmd.category)
		if err != nil {
			return err
		}
		patch.CategoryID = &catID
	}

	if cmd.recur != "" {
		recur := task.Recurrence(cmd.recur)
		if !recur.IsValid() {
			return fmt.Errorf("invalid recurrence %q: must be one of none, daily, weekly, monthly", cmd.recur)
		}
		patch.Recurrence = &recur
	}

	if c.IsSet("every") {
		every := int(cmd.every)
		patch.RecurrenceInterval = &every
	}

	if cmd.until != "" {
		until, err := parseDueDate(cmd.until)
		if err != nil {
			return err
		}
		patch.RecurrenceEndDate = &until
	}

	updated, err := cmd.app.Tasks.Update(id, patch)
	if err != nil {
		return fmt.Errorf("edit task: %w", err)
	}

	if cmd.jsonOutput {
		return iojson.Write(c.Root().Writer, updated)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "updated %s\n", shortID(updated.ID))
	return nil
}
