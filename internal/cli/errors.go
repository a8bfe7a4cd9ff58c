package cli

import (
	"errors"

	"github.com/thenoetrevino/todo/internal/models"
	listservice "github.com/thenoetrevino/todo/internal/services/list"
	tagservice "github.com/thenoetrevino/todo/internal/services/tag"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
	"github.com/thenoetrevino/todo/internal/store"
)

// Classification describes how an error is reported
type Classification struct {
	Code       string // Machine-readable code in JSON output
	ExitCode   int
	Suggestion string
}

var validationErrors = []error{
	taskservice.ErrEmptyTitle,
	taskservice.ErrTitleTooLong,
	taskservice.ErrInvalidTaskID,
	taskservice.ErrInvalidListID,
	taskservice.ErrInvalidTagID,
	taskservice.ErrInvalidSubtaskID,
	taskservice.ErrEmptySubtaskTitle,
	taskservice.ErrNoChanges,
	taskservice.ErrInvalidView,
	listservice.ErrEmptyName,
	listservice.ErrNameTooLong,
	listservice.ErrInvalidColor,
	listservice.ErrInvalidListID,
	tagservice.ErrEmptyName,
	tagservice.ErrNameTooLong,
	tagservice.ErrInvalidColor,
	tagservice.ErrInvalidTagID,
}

// Classify maps a domain error to its output code, exit code and hint
func Classify(err error) Classification {
	var usage *CommandError
	switch {
	case errors.As(err, &usage):
		return Classification{Code: "USAGE_ERROR", ExitCode: usage.Code}
	case errors.Is(err, models.ErrTaskNotFound):
		return Classification{Code: "TASK_NOT_FOUND", ExitCode: ExitNotFound,
			Suggestion: "Use 'todo task list' to see available tasks"}
	case errors.Is(err, models.ErrSubtaskNotFound):
		return Classification{Code: "SUBTASK_NOT_FOUND", ExitCode: ExitNotFound,
			Suggestion: "Use 'todo task show <id>' to see the task's subtasks"}
	case errors.Is(err, models.ErrListNotFound):
		return Classification{Code: "LIST_NOT_FOUND", ExitCode: ExitNotFound,
			Suggestion: "Use 'todo list ls' to see available lists"}
	case errors.Is(err, models.ErrTagNotFound):
		return Classification{Code: "TAG_NOT_FOUND", ExitCode: ExitNotFound,
			Suggestion: "Use 'todo tag ls' to see available tags"}
	case errors.Is(err, store.ErrUnknownList):
		return Classification{Code: "UNKNOWN_LIST", ExitCode: ExitValidation,
			Suggestion: "Use 'todo list ls' to see available lists or 'todo list create' to add one"}
	case errors.Is(err, store.ErrUnknownTag):
		return Classification{Code: "UNKNOWN_TAG", ExitCode: ExitValidation,
			Suggestion: "Use 'todo tag ls' to see available tags or 'todo tag create' to add one"}
	case errors.Is(err, store.ErrCorruptData):
		return Classification{Code: "CORRUPT_DATA", ExitCode: ExitDataErr,
			Suggestion: "Run 'todo reset' to discard the stored data and restore defaults"}
	case errors.Is(err, store.ErrStorageUnavailable):
		return Classification{Code: "STORAGE_UNAVAILABLE", ExitCode: ExitError,
			Suggestion: "Check the storage section of your config file"}
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return Classification{Code: "VALIDATION_ERROR", ExitCode: ExitValidation}
		}
	}
	return Classification{Code: "ERROR", ExitCode: ExitError}
}
