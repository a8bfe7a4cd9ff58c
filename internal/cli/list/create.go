package list

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	listservice "github.com/thenoetrevino/todo/internal/services/list"
)

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new list",
		Long: `Create a new list.

Examples:
  todo list create --name "Errands"
  todo list create --name "Side project" --color "#22c55e" --quiet`,
		Args: cli.ExactArgs(0),
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "List name (required)")
	cmd.Flags().String("color", "#7D56F4", "List color in hex format #RRGGBB")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	if !args.Has("name") {
		return nil, cli.UsageError("required flag \"name\" not set")
	}

	color := args.GetString("color", "#7D56F4")
	if err := cli.ValidateColorHex(color); err != nil {
		return nil, cli.NewCommandError(cli.ExitValidation, err)
	}

	list, err := c.App.ListService.CreateList(ctx, listservice.CreateListRequest{
		Name:  args.GetString("name", ""),
		Color: color,
	})
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:  []string{list.ID},
		Data: list,
		Render: func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s %s (ID: %s)\n",
				styles.SuccessStyle.Render("✓ List created"), styles.Chip(list.Name, list.Color), list.ID)
			return err
		},
	}, nil
}
