package list

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// LsCmd returns the list ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List all lists with their open task counts",
		Args:  cli.ExactArgs(0),
		RunE:  handler.Command(runLs),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runLs(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*handler.Result, error) {
	lists, err := c.App.ListService.GetLists(ctx)
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []models.List{}
	}

	ids := make([]string, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}

	return &handler.Result{
		IDs:  ids,
		Data: lists,
		Render: func(w io.Writer) error {
			if _, err := fmt.Fprintln(w, styles.TitleStyle.Render(fmt.Sprintf("Lists (%d)", len(lists)))); err != nil {
				return err
			}
			for _, l := range lists {
				if _, err := fmt.Fprintf(w, "%s %s %s\n",
					styles.SubtitleStyle.Render(l.ID),
					styles.Chip(l.Name, l.Color),
					styles.ValueStyle.Render(fmt.Sprintf("%d open", l.Count)),
				); err != nil {
					return err
				}
			}
			return nil
		},
	}, nil
}
