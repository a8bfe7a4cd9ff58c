package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/todo/internal/models"
	listservice "github.com/thenoetrevino/todo/internal/services/list"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
	"github.com/thenoetrevino/todo/internal/store"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		exitCode int
	}{
		{"task not found", taskservice.ErrTaskNotFound, "TASK_NOT_FOUND", ExitNotFound},
		{"wrapped list not found", fmt.Errorf("lookup: %w", models.ErrListNotFound), "LIST_NOT_FOUND", ExitNotFound},
		{"subtask not found", models.ErrSubtaskNotFound, "SUBTASK_NOT_FOUND", ExitNotFound},
		{"unknown list", fmt.Errorf("%w: %q", store.ErrUnknownList, "9"), "UNKNOWN_LIST", ExitValidation},
		{"unknown tag", store.ErrUnknownTag, "UNKNOWN_TAG", ExitValidation},
		{"corrupt", &store.CorruptDataError{Key: "todo_lists", Err: errors.New("eof")}, "CORRUPT_DATA", ExitDataErr},
		{"unavailable", store.ErrStorageUnavailable, "STORAGE_UNAVAILABLE", ExitError},
		{"empty title", taskservice.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation},
		{"bad color", listservice.ErrInvalidColor, "VALIDATION_ERROR", ExitValidation},
		{"usage", UsageError("missing id"), "USAGE_ERROR", ExitUsage},
		{"other", errors.New("disk on fire"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.err)
			assert.Equal(t, tt.code, c.Code)
			assert.Equal(t, tt.exitCode, c.ExitCode)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitNotFound, ExitCode(NewCommandError(ExitNotFound, models.ErrTagNotFound)))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("wrapped: %w", UsageError("bad"))))
}

func TestCommandError_Unwrap(t *testing.T) {
	err := NewCommandError(ExitNotFound, models.ErrTaskNotFound)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	assert.Equal(t, "task not found", err.Error())
}

func TestReported(t *testing.T) {
	assert.False(t, Reported(nil))
	assert.False(t, Reported(errors.New("plain")))
	assert.False(t, Reported(UsageError("bad flag")))
	assert.True(t, Reported(fmt.Errorf("wrapped: %w", &CommandError{Code: ExitError, Err: errors.New("x"), Reported: true})))
}
