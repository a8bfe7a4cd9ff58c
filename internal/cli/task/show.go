package task

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/handler"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display all details of a task including description, subtasks, tags, and timestamps.",
		Args:  cli.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	task, err := c.App.TaskService.GetTask(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	lookup, err := c.Lookup(ctx)
	if err != nil {
		return nil, err
	}
	now := c.Now()

	return &handler.Result{
		IDs:  []string{task.ID},
		Data: task,
		Render: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, renderCard(task, lookup, now))
			return err
		},
	}, nil
}

// renderCard builds the bordered detail view for one task
func renderCard(task models.Task, lookup styles.Lookup, now time.Time) string {
	var b strings.Builder

	title := styles.TitleStyle.Render(task.Title)
	if task.Completed {
		title = styles.DoneStyle.Render(task.Title)
	}
	b.WriteString(styles.Checkbox(task.Completed) + " " + title + "\n")
	b.WriteString(styles.SubtitleStyle.Render("ID "+task.ID) + "\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.LabelStyle.Render(label+":") + " " + value + "\n")
	}
	field("List", lookup.ListChip(task.ListID))
	field("Due", styles.FormatDue(task.DueDate, task.Completed, now))
	field("Tags", lookup.TagChips(task.Tags))
	field("Created", styles.ValueStyle.Render(task.CreatedAt.Format("2006-01-02 15:04")))
	field("Updated", styles.ValueStyle.Render(task.UpdatedAt.Format("2006-01-02 15:04")))

	if len(task.Subtasks) > 0 {
		done, total := task.SubtaskProgress()
		b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Subtasks %d/%d", done, total)) + "\n")
		for _, st := range task.Subtasks {
			line := styles.ValueStyle.Render(st.Title)
			if st.Completed {
				line = styles.DoneStyle.Render(st.Title)
			}
			fmt.Fprintf(&b, "%s %s %s\n", styles.Checkbox(st.Completed), styles.SubtitleStyle.Render(st.ID), line)
		}
	}

	if strings.TrimSpace(task.Description) != "" {
		b.WriteString(styles.SectionStyle.Render("Description") + "\n")
		b.WriteString(styles.RenderMarkdown(task.Description, styles.CardWidth-6))
	}

	return styles.CardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
