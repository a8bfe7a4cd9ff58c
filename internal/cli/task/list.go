package task

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally narrowed to a view.

Views: all, today, upcoming, list:<id>, tag:<id>.
--list and --tag are shorthands for the list and tag views.

Examples:
  todo task list
  todo task list --view today
  todo task list --list 2 --pending
  todo task list --tag 1 --json`,
		Aliases: []string{"ls"},
		Args:    cli.ExactArgs(0),
		RunE:    handler.Command(runList),
	}

	cmd.Flags().String("view", "all", "View: all, today, upcoming, list:<id>, tag:<id>")
	cmd.Flags().String("list", "", "Only tasks in this list")
	cmd.Flags().String("tag", "", "Only tasks with this tag")
	cmd.Flags().Bool("completed", false, "Only completed tasks")
	cmd.Flags().Bool("pending", false, "Only incomplete tasks")
	cmd.MarkFlagsMutuallyExclusive("view", "list", "tag")
	cmd.MarkFlagsMutuallyExclusive("completed", "pending")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	view, err := selectedView(args)
	if err != nil {
		return nil, cli.UsageError("%v", err)
	}

	tasks, err := c.App.TaskService.GetView(ctx, view)
	if err != nil {
		return nil, err
	}

	switch {
	case args.GetBool("completed"):
		tasks = filterCompleted(tasks, true)
	case args.GetBool("pending"):
		tasks = filterCompleted(tasks, false)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	lookup, err := c.Lookup(ctx)
	if err != nil {
		return nil, err
	}
	now := c.Now()

	return &handler.Result{
		IDs:  taskIDs(tasks),
		Data: tasks,
		Render: func(w io.Writer) error {
			return RenderTasks(w, "Tasks: "+view.String(), tasks, lookup, now)
		},
	}, nil
}

func selectedView(args *handler.Arguments) (taskservice.View, error) {
	switch {
	case args.Has("list"):
		return taskservice.ParseView("list:" + args.GetString("list", ""))
	case args.Has("tag"):
		return taskservice.ParseView("tag:" + args.GetString("tag", ""))
	}
	return taskservice.ParseView(args.GetString("view", "all"))
}

func filterCompleted(tasks []models.Task, completed bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}
