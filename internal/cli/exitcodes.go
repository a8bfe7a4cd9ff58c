package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unreachable backends, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, unknown flags, unparseable flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested task, subtask, list or tag was not found.
	ExitNotFound = 3

	// ExitDataErr indicates stored data could not be decoded.
	ExitDataErr = 4

	// ExitValidation indicates input failed validation rules.
	// Use for: empty titles, bad colors, unknown list or tag references.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command.
type CommandError struct {
	Code int
	Err  error

	// Reported is set once the error has been shown to the user
	Reported bool
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError wraps err with an exit code
func NewCommandError(code int, err error) *CommandError {
	return &CommandError{Code: code, Err: err}
}

// UsageError reports incorrect usage with exit code 2
func UsageError(format string, args ...any) *CommandError {
	return NewCommandError(ExitUsage, fmt.Errorf(format, args...))
}

// ExitCode maps an error returned from command execution to a process exit
// code. Any error that is not a *CommandError is a general error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// Reported reports whether err was already printed by a command
func Reported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.Reported
}

// ExactArgs is cobra.ExactArgs reporting failures as usage errors
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return NewCommandError(ExitUsage, err)
		}
		return nil
	}
}

// FlagError converts cobra flag parsing failures into usage errors.
// Install it with cmd.SetFlagErrorFunc.
func FlagError(_ *cobra.Command, err error) error {
	return NewCommandError(ExitUsage, err)
}
