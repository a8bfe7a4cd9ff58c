package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
)

// TagCmd returns the task tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Attach or detach tags",
	}

	attach := &cobra.Command{
		Use:   "attach <task-id> <tag-id>",
		Short: "Attach a tag to a task",
		Args:  cli.ExactArgs(2),
		RunE:  handler.Command(runAttach),
	}
	detach := &cobra.Command{
		Use:   "detach <task-id> <tag-id>",
		Short: "Detach a tag from a task",
		Args:  cli.ExactArgs(2),
		RunE:  handler.Command(runDetach),
	}

	for _, sub := range []*cobra.Command{attach, detach} {
		handler.AddOutputFlags(sub)
		cmd.AddCommand(sub)
	}

	return cmd
}

func runAttach(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	task, err := c.App.TaskService.AttachTag(ctx, args.Arg(0), args.Arg(1))
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:    []string{task.ID},
		Data:   task,
		Render: confirm("Tag %s attached to task %s", args.Arg(1), task.ID),
	}, nil
}

func runDetach(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	task, err := c.App.TaskService.DetachTag(ctx, args.Arg(0), args.Arg(1))
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:    []string{task.ID},
		Data:   task,
		Render: confirm("Tag %s detached from task %s", args.Arg(1), task.ID),
	}, nil
}
