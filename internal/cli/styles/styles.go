// Package styles holds the lipgloss styles and renderers used for
// human-readable CLI output
package styles

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "List:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Subtasks"

	// Status styles
	DoneStyle    lipgloss.Style
	OverdueStyle lipgloss.Style
	SuccessStyle lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(theme.Subtle))

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Error))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Success))
}

// Chip renders a name in its own hex color, e.g. a list or tag
func Chip(name, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render("[" + name + "]")
}

// Checkbox renders a completion marker
func Checkbox(done bool) string {
	if done {
		return SuccessStyle.Render("[x]")
	}
	return ValueStyle.Render("[ ]")
}

// FormatDue renders a due date relative to now. Past due dates on
// incomplete tasks are highlighted.
func FormatDue(due *time.Time, completed bool, now time.Time) string {
	if due == nil {
		return ""
	}
	text := due.Format("Jan 2 15:04")
	if due.Format(time.DateOnly) == now.Format(time.DateOnly) {
		text = "today " + due.Format("15:04")
	}
	if !completed && due.Before(now) {
		return OverdueStyle.Render(text)
	}
	return SubtitleStyle.Render(text)
}

// Lookup resolves list and tag IDs to display chips
type Lookup struct {
	Lists map[string]models.List
	Tags  map[string]models.Tag
}

// NewLookup indexes lists and tags by ID
func NewLookup(lists []models.List, tags []models.Tag) Lookup {
	l := Lookup{
		Lists: make(map[string]models.List, len(lists)),
		Tags:  make(map[string]models.Tag, len(tags)),
	}
	for _, list := range lists {
		l.Lists[list.ID] = list
	}
	for _, tag := range tags {
		l.Tags[tag.ID] = tag
	}
	return l
}

// ListChip renders the task's list, or its raw ID when the list is unknown
func (l Lookup) ListChip(id string) string {
	if list, ok := l.Lists[id]; ok {
		return Chip(list.Name, list.Color)
	}
	return SubtitleStyle.Render("[list " + id + "]")
}

// TagChips renders every tag the task references
func (l Lookup) TagChips(ids []string) string {
	chips := make([]string, 0, len(ids))
	for _, id := range ids {
		if tag, ok := l.Tags[id]; ok {
			chips = append(chips, Chip(tag.Name, tag.Color))
		} else {
			chips = append(chips, SubtitleStyle.Render("[tag "+id+"]"))
		}
	}
	return strings.Join(chips, " ")
}

// TaskLine renders a task as a single line for list views
func TaskLine(task models.Task, lookup Lookup, now time.Time) string {
	title := ValueStyle.Render(task.Title)
	if task.Completed {
		title = DoneStyle.Render(task.Title)
	}

	parts := []string{
		Checkbox(task.Completed),
		SubtitleStyle.Render(task.ID),
		title,
		lookup.ListChip(task.ListID),
	}
	if done, total := task.SubtaskProgress(); total > 0 {
		parts = append(parts, SubtitleStyle.Render(fmt.Sprintf("%d/%d", done, total)))
	}
	if due := FormatDue(task.DueDate, task.Completed, now); due != "" {
		parts = append(parts, due)
	}
	if chips := lookup.TagChips(task.Tags); chips != "" {
		parts = append(parts, chips)
	}
	return strings.Join(parts, " ")
}
