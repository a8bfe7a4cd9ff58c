package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Long:  "Mark a task as completed. Use --undo to mark it incomplete again.",
		Args:  cli.ExactArgs(1),
		RunE:  handler.Command(runDone),
	}

	cmd.Flags().Bool("undo", false, "Mark the task incomplete instead")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runDone(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	completed := !args.GetBool("undo")
	task, err := c.App.TaskService.UpdateTask(ctx, taskservice.UpdateTaskRequest{
		ID:        args.Arg(0),
		Completed: &completed,
	})
	if err != nil {
		return nil, err
	}

	state := "completed"
	if !completed {
		state = "reopened"
	}
	return &handler.Result{
		IDs:    []string{task.ID},
		Data:   task,
		Render: confirm("Task '%s' %s", task.Title, state),
	}, nil
}

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task's completion state",
		Args:  cli.ExactArgs(1),
		RunE:  handler.Command(runToggle),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runToggle(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	task, err := c.App.TaskService.ToggleTask(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	state := "incomplete"
	if task.Completed {
		state = "completed"
	}
	return &handler.Result{
		IDs:    []string{task.ID},
		Data:   task,
		Render: confirm("Task '%s' is now %s", task.Title, state),
	}, nil
}
