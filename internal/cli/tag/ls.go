package tag

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

// LsCmd returns the tag ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List all tags",
		Args:  cli.ExactArgs(0),
		RunE:  handler.Command(runLs),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runLs(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*handler.Result, error) {
	tags, err := c.App.TagService.GetTags(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}

	ids := make([]string, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}

	return &handler.Result{
		IDs:  ids,
		Data: tags,
		Render: func(w io.Writer) error {
			if _, err := fmt.Fprintln(w, styles.TitleStyle.Render(fmt.Sprintf("Tags (%d)", len(tags)))); err != nil {
				return err
			}
			for _, tag := range tags {
				if _, err := fmt.Fprintf(w, "%s %s\n", styles.SubtitleStyle.Render(tag.ID), styles.Chip(tag.Name, tag.Color)); err != nil {
					return err
				}
			}
			return nil
		},
	}, nil
}
