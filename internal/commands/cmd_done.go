package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/core/task"
)

// DoneCmd implements the chore done, reopen, and toggle commands.
type DoneCmd struct {
	flags *Flags
	app   *chore.App
}

// NewDoneCmd creates the task status commands.
func NewDoneCmd(flags *Flags, app *chore.App) *DoneCmd {
	return &DoneCmd{flags: flags, app: app}
}

// Register adds the status commands to the application.
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "done",
			Usage:     "Complete a task",
			UsageText: "chore done <id>",
			Description: `Marks a task as done. A recurring task spawns a new open task with
the advanced due date.

Examples:
  chore done 4f2a`,
			Action: cmd.runDone,
		},
		&cli.Command{
			Name:      "reopen",
			Usage:     "Reopen a completed task",
			UsageText: "chore reopen <id>",
			Action:    cmd.runReopen,
		},
		&cli.Command{
			Name:      "toggle",
			Usage:     "Toggle a task between open and done",
			UsageText: "chore toggle <id>",
			Action:    cmd.runToggle,
		},
	)

	return app
}

func (cmd *DoneCmd) runDone(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore done <id>")
	}

	id, err := resolveTaskID(cmd.app, c.Args().Get(0))
	if err != nil {
		return err
	}

	completed, spawned, err := cmd.app.Tasks.Complete(id)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	cmd.printResult(c, completed, spawned)
	return nil
}

func (cmd *DoneCmd) runReopen(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore reopen <id>")
	}

	id, err := resolveTaskID(cmd.app, c.Args().Get(0))
	if err != nil {
		return err
	}

	reopened, err := cmd.app.Tasks.Reopen(id)
	if err != nil {
		return fmt.Errorf("reopen task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "reopened %s\n", shortID(reopened.ID))
	return nil
}

func (cmd *DoneCmd) runToggle(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore toggle <id>")
	}

	id, err := resolveTaskID(cmd.app, c.Args().Get(0))
	if err != nil {
		return err
	}

	toggled, spawned, err := cmd.app.Tasks.Toggle(id)
	if err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}

	if toggled.Status == task.StatusOpen {
		_, _ = fmt.Fprintf(c.Root().Writer, "reopened %s\n", shortID(toggled.ID))
		return nil
	}

	cmd.printResult(c, toggled, spawned)
	return nil
}

func (cmd *DoneCmd) printResult(c *cli.Command, completed task.Task, spawned *task.Task) {
	_, _ = fmt.Fprintf(c.Root().Writer, "done %s\n", shortID(completed.ID))
	if spawned != nil {
		_, _ = fmt.Fprintf(c.Root().Writer, "next %s due %s\n", shortID(spawned.ID), spawned.DueDate)
	}
}
