package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs a successful result wrapped in the JSON envelope
func (f *OutputFormatter) Success(data any) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

// IDs prints one identifier per line, for quiet mode
func (f *OutputFormatter) IDs(ids ...string) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(os.Stdout, id); err != nil {
			return err
		}
	}
	return nil
}

// Human writes pre-rendered text to stdout
func (f *OutputFormatter) Human(render func(w io.Writer) error) error {
	return render(os.Stdout)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err to the user and returns it as a *CommandError with the
// matching exit code
func (f *OutputFormatter) Fail(err error) error {
	c := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(c.Code, err.Error(), c.Suggestion); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &CommandError{Code: c.ExitCode, Err: err, Reported: true}
}
