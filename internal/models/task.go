package models

import (
	"slices"
	"time"
)

// Task represents a single to-do item.
// JSON names match the layout of the todo_tasks storage slot.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ListID      string     `json:"listId"`
	Tags        []string   `json:"tags"`     // Tag IDs, not enforced by the store
	Subtasks    []Subtask  `json:"subtasks"` // Ordered, owned by the task
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Subtask is a checklist entry inside a task. It has no lifecycle of its own.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewTask holds the caller-supplied fields of a task.
// ID and timestamps are assigned by the store.
type NewTask struct {
	Title       string
	Description string
	Completed   bool
	DueDate     *time.Time
	ListID      string
	Tags        []string
	Subtasks    []Subtask
}

// TaskPatch is a shallow partial update. Nil fields are left untouched;
// non-nil Tags or Subtasks replace the whole sequence.
type TaskPatch struct {
	Title        *string
	Description  *string
	Completed    *bool
	DueDate      *time.Time
	ClearDueDate bool // Removes the due date; takes precedence over DueDate
	ListID       *string
	Tags         *[]string
	Subtasks     *[]Subtask
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.DueDate == nil && !p.ClearDueDate && p.ListID == nil &&
		p.Tags == nil && p.Subtasks == nil
}

// Apply merges the patch over t and returns the result. t is not modified.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	if p.DueDate != nil {
		due := *p.DueDate
		out.DueDate = &due
	}
	if p.ClearDueDate {
		out.DueDate = nil
	}
	if p.ListID != nil {
		out.ListID = *p.ListID
	}
	if p.Tags != nil {
		out.Tags = slices.Clone(*p.Tags)
	}
	if p.Subtasks != nil {
		out.Subtasks = slices.Clone(*p.Subtasks)
	}
	return out
}

// Clone returns a deep copy so callers can mutate the result freely.
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	out.Tags = slices.Clone(t.Tags)
	out.Subtasks = slices.Clone(t.Subtasks)
	return out
}

// IsDueOn reports whether the due date falls on the calendar day of day.
// The due date is compared in its own offset, i.e. the YYYY-MM-DD prefix
// of its ISO form.
func (t Task) IsDueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Format(time.DateOnly) == day.Format(time.DateOnly)
}

// IsDueAfter reports whether the due date is strictly later than instant.
func (t Task) IsDueAfter(instant time.Time) bool {
	return t.DueDate != nil && t.DueDate.After(instant)
}

// HasTag reports whether the task references tagID.
func (t Task) HasTag(tagID string) bool {
	return slices.Contains(t.Tags, tagID)
}

// SubtaskProgress returns the number of completed subtasks and the total.
func (t Task) SubtaskProgress() (done, total int) {
	for _, st := range t.Subtasks {
		if st.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// SubtaskIndex returns the position of the subtask with the given ID, or -1.
func (t Task) SubtaskIndex(subtaskID string) int {
	return slices.IndexFunc(t.Subtasks, func(st Subtask) bool {
		return st.ID == subtaskID
	})
}
