package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
)

// SubtaskCmd returns the task subtask parent command
func SubtaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage a task's checklist",
	}

	add := &cobra.Command{
		Use:   "add <task-id> <title>",
		Short: "Append a subtask",
		Args:  cli.ExactArgs(2),
		RunE:  handler.Command(runSubtaskAdd),
	}
	done := &cobra.Command{
		Use:   "done <task-id> <subtask-id>",
		Short: "Flip a subtask's completion state",
		Args:  cli.ExactArgs(2),
		RunE:  handler.Command(runSubtaskDone),
	}
	remove := &cobra.Command{
		Use:     "rm <task-id> <subtask-id>",
		Short:   "Remove a subtask",
		Aliases: []string{"delete"},
		Args:    cli.ExactArgs(2),
		RunE:    handler.Command(runSubtaskRemove),
	}

	for _, sub := range []*cobra.Command{add, done, remove} {
		handler.AddOutputFlags(sub)
		cmd.AddCommand(sub)
	}

	return cmd
}

func runSubtaskAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	task, err := c.App.TaskService.AddSubtask(ctx, args.Arg(0), args.Arg(1))
	if err != nil {
		return nil, err
	}

	added := task.Subtasks[len(task.Subtasks)-1]
	return &handler.Result{
		IDs:    []string{added.ID},
		Data:   task,
		Render: confirm("Subtask '%s' added to task %s (ID: %s)", added.Title, task.ID, added.ID),
	}, nil
}

func runSubtaskDone(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	task, err := c.App.TaskService.ToggleSubtask(ctx, args.Arg(0), args.Arg(1))
	if err != nil {
		return nil, err
	}

	done, total := task.SubtaskProgress()
	return &handler.Result{
		IDs:    []string{args.Arg(1)},
		Data:   task,
		Render: confirm("Subtask %s toggled (%d/%d done)", args.Arg(1), done, total),
	}, nil
}

func runSubtaskRemove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	task, err := c.App.TaskService.RemoveSubtask(ctx, args.Arg(0), args.Arg(1))
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:    []string{args.Arg(1)},
		Data:   task,
		Render: confirm("Subtask %s removed from task %s", args.Arg(1), task.ID),
	}, nil
}
