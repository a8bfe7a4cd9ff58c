package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/testutil"
	clitest "github.com/thenoetrevino/todo/internal/testutil/cli"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a command carrying one flag of every supported type
func createTestCommand(fn Func) *cobra.Command {
	cmd := &cobra.Command{
		Use:  "test",
		RunE: Command(fn),
	}
	cmd.Flags().String("name", "default", "")
	cmd.Flags().Bool("flag", false, "")
	cmd.Flags().StringSlice("slice", nil, "")
	cmd.Flags().StringArray("array", nil, "")
	AddOutputFlags(cmd)
	return cmd
}

// ============================================================================
// Flag Parsing Tests
// ============================================================================

func TestParseFlagsToMap_OnlyExplicitFlags(t *testing.T) {
	cmd := createTestCommand(nil)
	require.NoError(t, cmd.ParseFlags([]string{"--flag", "--slice", "a,b", "--array", "x,y", "--array", "z"}))

	flags := parseFlagsToMap(cmd)

	assert.NotContains(t, flags, "name", "defaults must not appear as set")
	assert.Equal(t, true, flags["flag"])
	assert.Equal(t, []string{"a", "b"}, flags["slice"])
	assert.Equal(t, []string{"x,y", "z"}, flags["array"])
}

func TestArguments_Accessors(t *testing.T) {
	args := &Arguments{
		Flags: map[string]any{"name": "todo", "flag": true, "slice": []string{"1"}},
		Args:  []string{"first"},
	}

	assert.True(t, args.Has("name"))
	assert.False(t, args.Has("missing"))
	assert.Equal(t, "todo", args.GetString("name", "x"))
	assert.Equal(t, "x", args.GetString("missing", "x"))
	assert.Equal(t, "x", args.GetString("flag", "x"), "wrong type falls back to default")
	assert.True(t, args.GetBool("flag"))
	assert.False(t, args.GetBool("name"))
	assert.Equal(t, []string{"1"}, args.GetStringSlice("slice", nil))
	assert.Nil(t, args.GetStringSlice("missing", nil))
	assert.Equal(t, "first", args.Arg(0))
	assert.Equal(t, "", args.Arg(1))
}

// ============================================================================
// Command Tests
// ============================================================================

func TestCommand_OutputModes(t *testing.T) {
	app := clitest.SetupCLITest(t)
	fn := func(ctx context.Context, c *cli.CLI, args *Arguments) (*Result, error) {
		return &Result{
			IDs:  []string{"7", "8"},
			Data: models.Tag{ID: "7", Name: args.GetString("name", ""), Color: "#000000"},
			Render: func(w io.Writer) error {
				_, err := fmt.Fprintln(w, "human:"+args.GetString("name", ""))
				return err
			},
		}, nil
	}

	t.Run("human", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, createTestCommand(fn), []string{"--name", "n"})
		require.NoError(t, err)
		assert.Equal(t, "human:n\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, createTestCommand(fn), []string{"--name", "n", "--json"})
		require.NoError(t, err)
		var tag models.Tag
		testutil.ParseJSONData(t, output, &tag)
		assert.Equal(t, "n", tag.Name)
	})

	t.Run("quiet wins over json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, createTestCommand(fn), []string{"--quiet", "--json"})
		require.NoError(t, err)
		assert.Equal(t, []string{"7", "8"}, strings.Fields(output))
	})
}

func TestCommand_ErrorsAreClassified(t *testing.T) {
	app := clitest.SetupCLITest(t)
	fn := func(context.Context, *cli.CLI, *Arguments) (*Result, error) {
		return nil, fmt.Errorf("lookup: %w", models.ErrListNotFound)
	}

	output, err := clitest.ExecuteCLICommand(t, app, createTestCommand(fn), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.True(t, cli.Reported(err))
	assert.True(t, errors.Is(err, models.ErrListNotFound))

	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "LIST_NOT_FOUND", errData["code"])
}
