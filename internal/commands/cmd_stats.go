package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/core/styles"
	"github.com/colonyops/chore/pkg/iojson"
)

// StatsCmd implements the chore stats command.
type StatsCmd struct {
	flags *Flags
	app   *chore.App

	jsonOutput bool
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags, app *chore.App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show task counts",
		UsageText: "chore stats [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	stats := cmd.app.Tasks.Stats()

	if cmd.jsonOutput {
		return iojson.Write(c.Root().Writer, stats)
	}

	out := c.Root().Writer
	_, _ = fmt.Fprintf(out, "total    %d\n", stats.Total)
	_, _ = fmt.Fprintf(out, "open     %d\n", stats.Open)
	_, _ = fmt.Fprintf(out, "done     %d\n", stats.Done)

	overdue := fmt.Sprintf("%d", stats.Overdue)
	if stats.Overdue > 0 {
		overdue = styles.Overdue.Render(overdue)
	}
	_, _ = fmt.Fprintf(out, "overdue  %s\n", overdue)

	return nil
}
