// Package view provides the top-level shortcuts for the today and upcoming
// task views
package view

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	"github.com/thenoetrevino/todo/internal/cli/task"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// TodayCmd returns the today command
func TodayCmd() *cobra.Command {
	return viewCmd(taskservice.ViewToday, "today",
		"Show tasks due today",
		"Show every task whose due date falls on today's calendar date, completed or not.")
}

// UpcomingCmd returns the upcoming command
func UpcomingCmd() *cobra.Command {
	return viewCmd(taskservice.ViewUpcoming, "upcoming",
		"Show tasks due later",
		"Show every task whose due date is strictly after the current moment, including later today.")
}

func viewCmd(kind taskservice.ViewKind, use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cli.ExactArgs(0),
		RunE:  handler.Command(run(taskservice.View{Kind: kind})),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func run(view taskservice.View) handler.Func {
	return func(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*handler.Result, error) {
		tasks, err := c.App.TaskService.GetView(ctx, view)
		if err != nil {
			return nil, err
		}
		if tasks == nil {
			tasks = []models.Task{}
		}

		lookup, err := c.Lookup(ctx)
		if err != nil {
			return nil, err
		}
		now := c.Now()

		ids := make([]string, len(tasks))
		for i, t := range tasks {
			ids[i] = t.ID
		}

		return &handler.Result{
			IDs:  ids,
			Data: tasks,
			Render: func(w io.Writer) error {
				header := "Today, " + now.Format("Mon Jan 2")
				if view.Kind == taskservice.ViewUpcoming {
					header = "Upcoming"
				}
				return task.RenderTasks(w, header, tasks, lookup, now)
			},
		}, nil
	}
}
