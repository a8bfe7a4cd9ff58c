package tag

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	tagservice "github.com/thenoetrevino/todo/internal/services/tag"
)

const defaultColor = "#a8dadc"

// CreateCmd returns the tag create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tag",
		Long: `Create a new tag.

Examples:
  todo tag create --name urgent --color "#ef4444"
  todo tag create --name someday --quiet`,
		Args: cli.ExactArgs(0),
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Tag name (required)")
	cmd.Flags().String("color", defaultColor, "Tag color in hex format #RRGGBB")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	if !args.Has("name") {
		return nil, cli.UsageError("required flag \"name\" not set")
	}

	tag, err := c.App.TagService.CreateTag(ctx, tagservice.CreateTagRequest{
		Name:  args.GetString("name", ""),
		Color: args.GetString("color", defaultColor),
	})
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:  []string{tag.ID},
		Data: tag,
		Render: func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s %s (ID: %s)\n",
				styles.SuccessStyle.Render("✓ Tag created"), styles.Chip(tag.Name, tag.Color), tag.ID)
			return err
		},
	}, nil
}
