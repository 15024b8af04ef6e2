package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/external"
	"github.com/colonyops/chore/pkg/iojson"
)

// SyncCmd implements the chore import and export commands for the
// foreign task-exchange format.
type SyncCmd struct {
	flags *Flags
	app   *chore.App

	reader   iojson.FileReader[[]external.Task]
	strategy string
}

// NewSyncCmd creates the import/export commands.
func NewSyncCmd(flags *Flags, app *chore.App) *SyncCmd {
	return &SyncCmd{flags: flags, app: app}
}

// Register adds the import and export commands to the application.
func (cmd *SyncCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "import",
			Usage:     "Import tasks from an external tracker export",
			UsageText: "chore import [--file <path>] [--strategy <skip|overwrite|copy>]",
			Description: `Reads a JSON array of external tasks (task_id/name/details/tags
format) and merges them into the task list. The strategy decides what
happens on id collisions.

Examples:
  chore import -f export.json
  cat export.json | chore import --strategy overwrite`,
			Flags: []cli.Flag{
				cmd.reader.Flag(),
				&cli.StringFlag{
					Name:        "strategy",
					Usage:       "merge strategy on id collision (skip, overwrite, copy)",
					Value:       string(chore.MergeSkip),
					Destination: &cmd.strategy,
				},
			},
			Action: cmd.runImport,
		},
		&cli.Command{
			Name:      "export",
			Usage:     "Export tasks in the external tracker format",
			UsageText: "chore export [id ...]",
			Description: `Writes tasks as a JSON array in the external format. Without
arguments the full list is exported.`,
			Action: cmd.runExport,
		},
	)

	return app
}

func (cmd *SyncCmd) runImport(ctx context.Context, c *cli.Command) error {
	strategy := chore.MergeStrategy(cmd.strategy)
	if !strategy.IsValid() {
		return fmt.Errorf("invalid strategy %q: must be skip, overwrite, or copy", cmd.strategy)
	}

	items, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	stats, err := cmd.app.Tasks.Import(items, strategy)
	if err != nil {
		return fmt.Errorf("import tasks: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "imported %d, skipped %d, errors %d\n",
		stats.Imported, stats.Skipped, stats.Errors)
	return nil
}

func (cmd *SyncCmd) runExport(ctx context.Context, c *cli.Command) error {
	ids := make([]string, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		id, err := resolveTaskID(cmd.app, arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	out, err := cmd.app.Tasks.Export(ids)
	if err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}

	return iojson.Write(c.Root().Writer, out)
}
