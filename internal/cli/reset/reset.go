// Package reset implements the command that wipes stored data
package reset

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks, lists and tags",
		Long: `Delete every stored task, list and tag. Default lists and tags,
and the sample tasks, are seeded again on the next command.

This is the recovery path when stored data can no longer be decoded.`,
		Args: cli.ExactArgs(0),
		RunE: handler.Command(runReset),
	}

	cmd.Flags().Bool("force", false, "Confirm deletion of all data")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runReset(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	if !args.GetBool("force") {
		return nil, cli.UsageError("reset deletes all data; re-run with --force to confirm")
	}

	if err := c.App.Store().Reset(ctx); err != nil {
		return nil, err
	}

	return &handler.Result{
		Data:   map[string]any{"reset": true},
		Render: confirmReset,
	}, nil
}

func confirmReset(w io.Writer) error {
	_, err := fmt.Fprintln(w, styles.SuccessStyle.Render("✓ All data deleted. Defaults will be restored on next use."))
	return err
}
