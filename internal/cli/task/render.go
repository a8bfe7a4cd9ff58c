package task

import (
	"fmt"
	"io"
	"time"

	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// RenderTasks writes one styled line per task under a header
func RenderTasks(w io.Writer, header string, tasks []models.Task, lookup styles.Lookup, now time.Time) error {
	if _, err := fmt.Fprintln(w, styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", header, len(tasks)))); err != nil {
		return err
	}
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No tasks"))
		return err
	}
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, styles.TaskLine(t, lookup, now)); err != nil {
			return err
		}
	}
	return nil
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// confirm renders the one-line acknowledgement printed after a write
func confirm(format string, args ...any) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
		return err
	}
}
