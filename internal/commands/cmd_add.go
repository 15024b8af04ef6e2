package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/core/task"
	"github.com/colonyops/chore/pkg/iojson"
)

// AddCmd implements the chore add command.
type AddCmd struct {
	flags *Flags
	app   *chore.App

	description string
	due         string
	category    string
	recur       string
	every       int
	until       string
	jsonOutput  bool
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *chore.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "chore add <title> [options]",
		Description: `Creates a new open task.

Examples:
  chore add "Water the plants"
  chore add "Weekly report" --due 2026-09-04 --recur weekly
  chore add "Pay rent" --due 2026-09-01 --recur monthly --category Home
  chore add "Standup notes" --due today --recur daily --until 2026-12-31`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date (YYYY-MM-DD, today, tomorrow)",
				Destination: &cmd.due,
			},
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "category name or id",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "recur",
				Usage:       "recurrence rule (daily, weekly, monthly)",
				Destination: &cmd.recur,
			},
			&cli.IntFlag{
				Name:        "every",
				Usage:       "recurrence interval multiplier (e.g. --recur weekly --every 2)",
				Value:       1,
				Destination: &cmd.every,
			},
			&cli.StringFlag{
				Name:        "until",
				Usage:       "last date the recurrence may schedule (YYYY-MM-DD)",
				Destination: &cmd.until,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the created task as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore add <title> [options]")
	}

	params := chore.CreateTask{
		Title:              c.Args().Get(0),
		Description:        cmd.description,
		RecurrenceInterval: int(cmd.every),
	}

	if cmd.due != "" {
		due, err := parseDueDate(cmd.due)
		if err != nil {
			return err
		}
		params.DueDate = &due
	}

	if cmd.category != "" {
		id, err := resolveCategory(cmd.app, cmd.category)
		if err != nil {
			return err
		}
		params.CategoryID = id
	}

	if cmd.recur != "" {
		params.Recurrence = task.Recurrence(cmd.recur)
		if !params.Recurrence.IsValid() {
			return fmt.Errorf("invalid recurrence %q: must be one of none, daily, weekly, monthly", cmd.recur)
		}
	}

	if cmd.until != "" {
		until, err := parseDueDate(cmd.until)
		if err != nil {
			return err
		}
		params.RecurrenceEndDate = &until
	}

	created, err := cmd.app.Tasks.Create(params)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	if cmd.jsonOutput {
		return iojson.Write(c.Root().Writer, created)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "added %s\n", shortID(created.ID))
	return nil
}
