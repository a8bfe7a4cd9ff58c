package models

import "errors"

// Domain-specific errors shared by the store and the services
var (
	// ErrTaskNotFound indicates that no task has the requested ID
	ErrTaskNotFound = errors.New("task not found")

	// ErrSubtaskNotFound indicates that the task has no subtask with the requested ID
	ErrSubtaskNotFound = errors.New("subtask not found")

	// ErrListNotFound indicates that no list has the requested ID
	ErrListNotFound = errors.New("list not found")

	// ErrTagNotFound indicates that no tag has the requested ID
	ErrTagNotFound = errors.New("tag not found")
)
