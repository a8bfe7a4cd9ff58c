// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/todo/internal/cli"
)

// Func runs a command against an initialized CLI
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (*Result, error)

// Result is what a command hands back for output
type Result struct {
	// IDs are printed one per line in quiet mode
	IDs []string
	// Data is the JSON payload
	Data any
	// Render writes the human-readable form
	Render func(w io.Writer) error
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	// Flags holds only the flags the user set explicitly
	Flags map[string]any
	Args  []string
	Stdin io.Reader
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// AddOutputFlags registers the --json and --quiet flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Command wraps common command execution logic.
// Returns a cobra RunE compatible function.
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("failed to format error", "error", fmtErr)
			}
			return &cli.CommandError{Code: cli.ExitError, Err: err, Reported: true}
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close storage", "error", err)
			}
		}()

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			Stdin: cmd.InOrStdin(),
			cmd:   cmd,
		}

		result, err := fn(ctx, cliInstance, arguments)
		if err != nil {
			slog.Debug("command failed", "command", cmd.CommandPath(), "error", err)
			return formatter.Fail(err)
		}
		return write(formatter, result)
	}
}

// write prints result in the formatter's mode
func write(formatter *cli.OutputFormatter, result *Result) error {
	if result == nil {
		return nil
	}
	switch {
	case formatter.Quiet:
		return formatter.IDs(result.IDs...)
	case formatter.JSON:
		return formatter.Success(result.Data)
	case result.Render != nil:
		return formatter.Human(result.Render)
	}
	return formatter.Human(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%+v\n", result.Data)
		return err
	})
}

// parseFlagsToMap converts the explicitly set cobra flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringSlice":
			if v, err := cmd.Flags().GetStringSlice(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringArray":
			if v, err := cmd.Flags().GetStringArray(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether the flag was set on the command line
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// GetStringSlice retrieves a string slice flag with default
func (a *Arguments) GetStringSlice(name string, defaultVal []string) []string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.([]string)
	if !ok {
		return defaultVal
	}
	return val
}

// Arg returns positional argument i or "" when absent
func (a *Arguments) Arg(i int) string {
	if i < len(a.Args) {
		return a.Args[i]
	}
	return ""
}
