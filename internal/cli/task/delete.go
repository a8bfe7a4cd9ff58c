package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a task",
		Aliases: []string{"rm"},
		Args:    cli.ExactArgs(1),
		RunE:    handler.Command(runDelete),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	id := args.Arg(0)
	if err := c.App.TaskService.DeleteTask(ctx, id); err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:    []string{id},
		Data:   map[string]any{"id": id, "deleted": true},
		Render: confirm("Task %s deleted", id),
	}, nil
}
