package task

import (
	"errors"

	"github.com/thenoetrevino/todo/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle        = errors.New("task title cannot be empty")
	ErrTitleTooLong      = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID     = errors.New("invalid task ID")
	ErrInvalidListID     = errors.New("invalid list ID")
	ErrInvalidTagID      = errors.New("invalid tag ID")
	ErrInvalidSubtaskID  = errors.New("invalid subtask ID")
	ErrEmptySubtaskTitle = errors.New("subtask title cannot be empty")
	ErrNoChanges         = errors.New("no fields to update")
	ErrInvalidView       = errors.New("invalid view (want all, today, upcoming, list:<id> or tag:<id>)")

	// Business logic errors
	ErrTaskNotFound    = models.ErrTaskNotFound
	ErrSubtaskNotFound = models.ErrSubtaskNotFound
)
