package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chore/internal/chore"
	"github.com/colonyops/chore/internal/core/category"
	"github.com/colonyops/chore/internal/core/styles"
	"github.com/colonyops/chore/pkg/iojson"
)

// CategoryCmd implements the chore category command group.
type CategoryCmd struct {
	flags *Flags
	app   *chore.App

	// add flags
	addColor string

	// edit flags
	editName  string
	editColor string

	// ls flags
	jsonOutput bool
}

// NewCategoryCmd creates a new category command.
func NewCategoryCmd(flags *Flags, app *chore.App) *CategoryCmd {
	return &CategoryCmd{flags: flags, app: app}
}

// Register adds the category command to the application.
func (cmd *CategoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "category",
		Aliases: []string{"cat"},
		Usage:   "Manage categories",
		Description: fmt.Sprintf(`Category commands. At most %d categories may exist at a time;
names are unique (case-insensitive).

Examples:
  chore category add Home
  chore category add Work --color "#45B7D1"
  chore category edit Home --name Household
  chore category rm Home`, category.MaxCategories),
		Commands: []*cli.Command{
			cmd.lsCmd(),
			cmd.addCmd(),
			cmd.editCmd(),
			cmd.rmCmd(),
		},
	})

	return app
}

func (cmd *CategoryCmd) lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List categories",
		UsageText: "chore category ls [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.runLs,
	}
}

func (cmd *CategoryCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a category",
		UsageText: "chore category add <name> [--color <#RRGGBB>]",
		Description: `Creates a category. Without --color, the next color of the
configured palette is assigned.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "color",
				Usage:       "display color as #RRGGBB",
				Destination: &cmd.addColor,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *CategoryCmd) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Rename or recolor a category",
		UsageText: "chore category edit <name-or-id> [--name <name>] [--color <#RRGGBB>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "new name",
				Destination: &cmd.editName,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "new display color as #RRGGBB",
				Destination: &cmd.editColor,
			},
		},
		Action: cmd.runEdit,
	}
}

func (cmd *CategoryCmd) rmCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Delete a category",
		UsageText: "chore category rm <name-or-id>",
		Description: `Deletes a category. Tasks still referencing it keep the reference
and are listed as uncategorized.`,
		Action: cmd.runRm,
	}
}

func (cmd *CategoryCmd) runLs(ctx context.Context, c *cli.Command) error {
	cats := cmd.app.Categories.List()

	if cmd.jsonOutput {
		for _, cat := range cats {
			if err := iojson.WriteLine(c.Root().Writer, cat); err != nil {
				return err
			}
		}
		return nil
	}

	if len(cats) == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "No categories found")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\t \tNAME\tCOLOR")

	for _, cat := range cats {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			shortID(cat.ID), styles.CategoryDot(cat.Color), cat.Name, cat.Color)
	}

	return w.Flush()
}

func (cmd *CategoryCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore category add <name>")
	}

	cat, err := cmd.app.Categories.Create(c.Args().Get(0), cmd.addColor)
	if err != nil {
		return fmt.Errorf("add category: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "added %s (%s)\n", cat.Name, shortID(cat.ID))
	return nil
}

func (cmd *CategoryCmd) runEdit(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore category edit <name-or-id> [--name <name>] [--color <#RRGGBB>]")
	}

	id, err := resolveCategory(cmd.app, c.Args().Get(0))
	if err != nil {
		return err
	}

	patch := chore.CategoryUpdate{}
	if c.IsSet("name") {
		patch.Name = &cmd.editName
	}
	if c.IsSet("color") {
		patch.Color = &cmd.editColor
	}

	cat, err := cmd.app.Categories.Update(id, patch)
	if err != nil {
		return fmt.Errorf("edit category: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "updated %s\n", cat.Name)
	return nil
}

func (cmd *CategoryCmd) runRm(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: chore category rm <name-or-id>")
	}

	id, err := resolveCategory(cmd.app, c.Args().Get(0))
	if err != nil {
		return err
	}

	if err := cmd.app.Categories.Delete(id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "removed %s\n", shortID(id))
	return nil
}
