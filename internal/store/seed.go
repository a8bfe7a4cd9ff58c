package store

import (
	"time"

	"github.com/thenoetrevino/todo/internal/models"
)

// Storage keys for the three collections
const (
	KeyTasks = "todo_tasks"
	KeyLists = "todo_lists"
	KeyTags  = "todo_tags"
)

// DefaultLists returns the lists seeded into an empty store
func DefaultLists() []models.List {
	return []models.List{
		{ID: "1", Name: "Personal", Color: "#ef4444"},
		{ID: "2", Name: "Work", Color: "#06b6d4"},
		{ID: "3", Name: "List 1", Color: "#fbbf24"},
	}
}

// DefaultTags returns the tags seeded into an empty store
func DefaultTags() []models.Tag {
	return []models.Tag{
		{ID: "1", Name: "Tag 1", Color: "#a8dadc"},
		{ID: "2", Name: "Tag 2", Color: "#f1e3d3"},
	}
}

// SampleTasks returns the demo tasks seeded into an empty store.
// Due dates are placed relative to now so the today and upcoming views
// have something to show.
func SampleTasks(now time.Time) []models.Task {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(days, hour int) *time.Time {
		t := day.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour)
		return &t
	}

	return []models.Task{
		{
			ID:          "1",
			Title:       "Research content ideas",
			Description: "Collect topics for next month's posts.",
			ListID:      "1",
			DueDate:     at(0, 17),
			Tags:        []string{"1"},
			Subtasks:    []models.Subtask{},
		},
		{
			ID:       "2",
			Title:    "Create a database of guest authors",
			ListID:   "2",
			Tags:     []string{},
			Subtasks: []models.Subtask{},
		},
		{
			ID:          "3",
			Title:       "Renew driver's license",
			Description: "Bring the old license and a photo.",
			ListID:      "1",
			DueDate:     at(3, 10),
			Tags:        []string{"1"},
			Subtasks: []models.Subtask{
				{ID: "1", Title: "Book appointment"},
				{ID: "2", Title: "Print application form"},
			},
		},
		{
			ID:       "4",
			Title:    "Consult accountant",
			ListID:   "3",
			DueDate:  at(1, 14),
			Tags:     []string{"2"},
			Subtasks: []models.Subtask{{ID: "1", Title: "Gather receipts", Completed: true}},
		},
		{
			ID:        "5",
			Title:     "Print business card",
			Completed: true,
			ListID:    "2",
			Tags:      []string{},
			Subtasks:  []models.Subtask{},
		},
	}
}

// stampSamples sets creation times on a copy of the sample tasks
func stampSamples(tasks []models.Task, now time.Time) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		t = t.Clone()
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.Before(t.CreatedAt) {
			t.UpdatedAt = t.CreatedAt
		}
		out[i] = t
	}
	return out
}
