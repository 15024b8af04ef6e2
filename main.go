package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/commands"
	"github.com/colonyops/chore/internal/core/config"
	"github.com/colonyops/chore/internal/store/jsonfile"
	"github.com/colonyops/chore/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		choreApp  = &chore.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "chore",
		Usage:     "Manage your tasks from the terminal",
		UsageText: "chore [global options] command [command options]",
		Description: `Chore is a single-user task manager. Tasks live in two flat JSON
files under the data directory, so they are trivial to inspect, back
up, and sync.

Tasks can carry a due date, one of up to five colored categories, and
a recurrence rule; completing a recurring task schedules the next
occurrence automatically.

Run 'chore ls' to see your tasks.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CHORE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/chore.log)",
				Sources:     cli.EnvVars("CHORE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CHORE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CHORE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/chore.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "chore.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// A corrupt store file is fatal here rather than silently
			// replaced; the files are plain JSON and easy to repair.
			catStore := jsonfile.NewCategoryStore(cfg.CategoriesFile())
			catSvc, err := chore.NewCategoryService(catStore, cfg.ColorPalette, log.Logger)
			if err != nil {
				return ctx, err
			}

			taskStore := jsonfile.NewTaskStore(cfg.TasksFile())
			taskSvc, err := chore.NewTaskService(taskStore, catSvc, log.Logger)
			if err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*choreApp = *chore.NewApp(taskSvc, catSvc, cfg)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewAddCmd(flags, choreApp).Register(app)
	app = commands.NewLsCmd(flags, choreApp).Register(app)
	app = commands.NewEditCmd(flags, choreApp).Register(app)
	app = commands.NewDoneCmd(flags, choreApp).Register(app)
	app = commands.NewRmCmd(flags, choreApp).Register(app)
	app = commands.NewStatsCmd(flags, choreApp).Register(app)
	app = commands.NewCategoryCmd(flags, choreApp).Register(app)
	app = commands.NewSyncCmd(flags, choreApp).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
