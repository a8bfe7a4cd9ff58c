package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	all := []error{ErrTaskNotFound, ErrSubtaskNotFound, ErrListNotFound, ErrTagNotFound}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

// ============================================================================
// TaskPatch Tests
// ============================================================================

func sampleTask() Task {
	due := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	return Task{
		ID:          "42",
		Title:       "Write report",
		Description: "quarterly numbers",
		DueDate:     &due,
		ListID:      "2",
		Tags:        []string{"1"},
		Subtasks:    []Subtask{{ID: "s1", Title: "Draft", Completed: true}},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestTaskPatch_ApplyTitleOnly(t *testing.T) {
	orig := sampleTask()
	title := "Write final report"

	got := TaskPatch{Title: &title}.Apply(orig)

	if got.Title != title {
		t.Errorf("Title = %q, want %q", got.Title, title)
	}
	if got.Description != orig.Description || got.ListID != orig.ListID {
		t.Error("Untouched scalar fields changed")
	}
	if !got.DueDate.Equal(*orig.DueDate) {
		t.Error("DueDate changed")
	}
	if len(got.Tags) != 1 || len(got.Subtasks) != 1 {
		t.Error("Sequences changed")
	}
	if orig.Title != "Write report" {
		t.Error("Apply must not modify its input")
	}
}

func TestTaskPatch_ReplacesSequences(t *testing.T) {
	orig := sampleTask()
	tags := []string{"1", "2", "2"}
	subtasks := []Subtask{}

	got := TaskPatch{Tags: &tags, Subtasks: &subtasks}.Apply(orig)

	if len(got.Tags) != 3 {
		t.Errorf("Expected tags to be replaced wholesale, got %v", got.Tags)
	}
	if len(got.Subtasks) != 0 {
		t.Errorf("Expected subtasks to be cleared, got %v", got.Subtasks)
	}

	tags[0] = "mutated"
	if got.Tags[0] != "1" {
		t.Error("Apply must copy the replacement slice")
	}
}

func TestTaskPatch_ClearDueDateWins(t *testing.T) {
	later := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	got := TaskPatch{DueDate: &later, ClearDueDate: true}.Apply(sampleTask())
	if got.DueDate != nil {
		t.Errorf("Expected due date cleared, got %v", got.DueDate)
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(TaskPatch{}).IsEmpty() {
		t.Error("Zero patch should be empty")
	}
	done := true
	if (TaskPatch{Completed: &done}).IsEmpty() {
		t.Error("Patch with Completed should not be empty")
	}
}

// ============================================================================
// Task Helper Tests
// ============================================================================

func TestTask_CloneIsDeep(t *testing.T) {
	orig := sampleTask()
	clone := orig.Clone()

	clone.Tags[0] = "x"
	clone.Subtasks[0].Title = "x"
	*clone.DueDate = clone.DueDate.Add(time.Hour)

	if orig.Tags[0] != "1" || orig.Subtasks[0].Title != "Draft" {
		t.Error("Clone shares slices with original")
	}
	if orig.DueDate.Hour() != 9 {
		t.Error("Clone shares due date with original")
	}
}

func TestTask_IsDueOn(t *testing.T) {
	task := sampleTask()

	if !task.IsDueOn(time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)) {
		t.Error("Expected task to be due on 2026-10-19")
	}
	if task.IsDueOn(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)) {
		t.Error("Task should not be due on 2026-10-20")
	}

	task.DueDate = nil
	if task.IsDueOn(time.Now()) {
		t.Error("Task without due date is never due")
	}
}

func TestTask_IsDueAfter(t *testing.T) {
	task := sampleTask()
	due := *task.DueDate

	if task.IsDueAfter(due) {
		t.Error("Comparison must be strict")
	}
	if !task.IsDueAfter(due.Add(-time.Second)) {
		t.Error("Expected due date after instant")
	}
}

func TestTask_SubtaskHelpers(t *testing.T) {
	task := sampleTask()
	task.Subtasks = append(task.Subtasks, Subtask{ID: "s2", Title: "Review"})

	done, total := task.SubtaskProgress()
	if done != 1 || total != 2 {
		t.Errorf("SubtaskProgress = %d/%d, want 1/2", done, total)
	}
	if idx := task.SubtaskIndex("s2"); idx != 1 {
		t.Errorf("SubtaskIndex(s2) = %d, want 1", idx)
	}
	if idx := task.SubtaskIndex("missing"); idx != -1 {
		t.Errorf("SubtaskIndex(missing) = %d, want -1", idx)
	}
	if !task.HasTag("1") || task.HasTag("2") {
		t.Error("HasTag returned wrong result")
	}
}
