package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/list"
	"github.com/thenoetrevino/todo/internal/cli/reset"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/cli/tag"
	"github.com/thenoetrevino/todo/internal/cli/task"
	"github.com/thenoetrevino/todo/internal/cli/view"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - tasks, lists and tags from the terminal",
		Long: `todo keeps tasks in lists, labels them with tags, and shows what is due
today and coming up. Data lives in a key-value store: SQLite by default,
or memory, redis, mongo or postgres via the storage section of
~/.config/todo/config.yaml.

Every command accepts --json for machine-readable output and --quiet
to print only IDs.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().String("backend", "", "Storage backend override: memory, sqlite, redis, mongo, postgres")
	root.SetFlagErrorFunc(cli.FlagError)

	root.AddCommand(task.TaskCmd())
	root.AddCommand(list.ListCmd())
	root.AddCommand(tag.TagCmd())
	root.AddCommand(view.TodayCmd())
	root.AddCommand(view.UpcomingCmd())
	root.AddCommand(reset.ResetCmd())

	return root
}

// setup loads config once per invocation and hands it to the subcommand
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.NewCommandError(cli.ExitError, fmt.Errorf("failed to load config: %w", err))
	}
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Storage.Backend = backend
	}

	if err := logging.Init(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	styles.Init(cfg.Theme)

	cmd.SetContext(cli.ContextWithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the root command. Errors that commands did not report
// themselves are printed here; cobra's own parse errors count as usage errors.
func Execute() error {
	return execute(rootCmd)
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err == nil {
		return nil
	}

	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		err = cli.NewCommandError(cli.ExitUsage, err)
	}
	if !cli.Reported(err) {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		if cli.ExitCode(err) == cli.ExitUsage {
			fmt.Fprintln(os.Stderr, "💡 Suggestion: Run 'todo --help' for usage")
		}
	}
	return err
}
