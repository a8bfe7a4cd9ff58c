package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in a list.

Examples:
  todo task create --title "Buy milk"
  todo task create --title "Write report" --list 2 --due tomorrow --tag 1
  echo "## Notes" | todo task create --title "Plan trip" --description -
  todo task create --title "Release" --subtask "Tag" --subtask "Announce" --quiet`,
		Args: cli.ExactArgs(0),
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("list", "1", "List ID")
	cmd.Flags().String("description", "", "Task description (markdown, '-' reads stdin)")
	cmd.Flags().String("due", "", "Due date: today, tomorrow, +Nd, YYYY-MM-DD or YYYY-MM-DDTHH:MM")
	cmd.Flags().StringSlice("tag", nil, "Tag ID (repeatable)")
	cmd.Flags().StringArray("subtask", nil, "Subtask title (repeatable)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	if !args.Has("title") {
		return nil, cli.UsageError("required flag \"title\" not set")
	}

	description, err := cli.ReadDescription(args.GetString("description", ""), args.Stdin)
	if err != nil {
		return nil, err
	}

	req := taskservice.CreateTaskRequest{
		Title:       args.GetString("title", ""),
		Description: description,
		ListID:      args.GetString("list", "1"),
		TagIDs:      args.GetStringSlice("tag", nil),
		Subtasks:    args.GetStringSlice("subtask", nil),
	}

	if args.Has("due") {
		due, err := cli.ParseDueDate(args.GetString("due", ""), c.Now())
		if err != nil {
			return nil, cli.UsageError("%v", err)
		}
		req.DueDate = &due
	}

	task, err := c.App.TaskService.CreateTask(ctx, req)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:    []string{task.ID},
		Data:   task,
		Render: confirm("Task '%s' created successfully (ID: %s)", task.Title, task.ID),
	}, nil
}
