package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
)

// RmCmd implements the chore rm command.
type RmCmd struct {
	flags *Flags
	app   *chore.App
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags, app *chore.App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Delete a task",
		UsageText: "chore rm <id>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore rm <id>")
	}

	id, err := resolveTaskID(cmd.app, c.Args().Get(0))
	if err != nil {
		return err
	}

	if err := cmd.app.Tasks.Delete(id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "removed %s\n", shortID(id))
	return nil
}
