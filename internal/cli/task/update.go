package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update task fields. Only the flags given are changed.

Examples:
  todo task update 1718000000000 --title "New title"
  todo task update 1718000000000 --due none
  todo task update 1718000000000 --tag 1 --tag 3
  todo task update 1718000000000 --completed=false`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New description (markdown, '-' reads stdin)")
	cmd.Flags().String("list", "", "Move the task to this list")
	cmd.Flags().String("due", "", "New due date, or 'none' to clear it")
	cmd.Flags().StringSlice("tag", nil, "Replace the task's tags (repeatable, empty string clears)")
	cmd.Flags().Bool("completed", false, "Set the completion flag")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	req := taskservice.UpdateTaskRequest{ID: args.Arg(0)}

	if args.Has("title") {
		title := args.GetString("title", "")
		req.Title = &title
	}
	if args.Has("description") {
		description, err := cli.ReadDescription(args.GetString("description", ""), args.Stdin)
		if err != nil {
			return nil, err
		}
		req.Description = &description
	}
	if args.Has("list") {
		listID := args.GetString("list", "")
		req.ListID = &listID
	}
	if args.Has("due") {
		value := args.GetString("due", "")
		if strings.EqualFold(strings.TrimSpace(value), "none") {
			req.ClearDueDate = true
		} else {
			due, err := cli.ParseDueDate(value, c.Now())
			if err != nil {
				return nil, cli.UsageError("%v", err)
			}
			req.DueDate = &due
		}
	}
	if args.Has("tag") {
		tags := nonEmpty(args.GetStringSlice("tag", nil))
		req.TagIDs = &tags
	}
	if args.Has("completed") {
		completed := args.GetBool("completed")
		req.Completed = &completed
	}

	if !args.Has("title") && !args.Has("description") && !args.Has("list") &&
		!args.Has("due") && !args.Has("tag") && !args.Has("completed") {
		return nil, cli.UsageError("at least one of --title, --description, --list, --due, --tag or --completed must be specified")
	}

	task, err := c.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		IDs:    []string{task.ID},
		Data:   task,
		Render: confirm("Task %s updated", task.ID),
	}, nil
}

// nonEmpty drops blank entries so --tag "" clears all tags
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
