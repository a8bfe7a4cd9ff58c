package list

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/testutil"
	clitest "github.com/thenoetrevino/todo/internal/testutil/cli"
)

func TestCreateList(t *testing.T) {
	app := clitest.SetupCLITest(t)

	t.Run("Default color", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Errands", "--json"})
		require.NoError(t, err)

		var list models.List
		testutil.ParseJSONData(t, output, &list)
		assert.Equal(t, "Errands", list.Name)
		assert.Equal(t, "#7D56F4", list.Color)
		assert.Equal(t, 0, list.Count)
		assert.NotEmpty(t, list.ID)
	})

	t.Run("Quiet prints ID usable as task list", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Side", "--color", "#22c55e", "--quiet"})
		require.NoError(t, err)

		listID := strings.TrimSpace(output)
		taskID := testutil.CreateTestTask(t, app.Store(), listID, "In new list")
		assert.NotEmpty(t, taskID)

		list, err := app.ListService.GetList(context.Background(), listID)
		require.NoError(t, err)
		assert.Equal(t, 1, list.Count)
	})

	t.Run("Human", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Shown"})
		require.NoError(t, err)
		assert.Contains(t, output, "List created")
		assert.Contains(t, output, "[Shown]")
	})
}

func TestCreateList_Negative(t *testing.T) {
	app := clitest.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"missing name", []string{}, cli.ExitUsage},
		{"blank name", []string{"--name", "  "}, cli.ExitValidation},
		{"long name", []string{"--name", strings.Repeat("n", 51)}, cli.ExitValidation},
		{"bad color", []string{"--name", "X", "--color", "red"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, cli.ExitCode(err))
		})
	}

	lists, err := app.ListService.GetLists(context.Background())
	require.NoError(t, err)
	assert.Len(t, lists, 3, "only the seeded defaults")
}

func TestLsLists(t *testing.T) {
	app := clitest.SetupCLITest(t)
	testutil.CreateTestTask(t, app.Store(), "2", "Open work")
	done := testutil.CreateTestTask(t, app.Store(), "2", "Finished work")
	_, _, err := app.Store().ToggleTask(context.Background(), done)
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, app, LsCmd(), []string{"--json"})
	require.NoError(t, err)

	var lists []models.List
	testutil.ParseJSONData(t, output, &lists)
	require.Len(t, lists, 3)
	assert.Equal(t, "Personal", lists[0].Name)
	assert.Equal(t, 0, lists[0].Count)
	assert.Equal(t, "Work", lists[1].Name)
	assert.Equal(t, 1, lists[1].Count)

	output, err = clitest.ExecuteCLICommand(t, app, LsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, strings.Fields(output))

	output, err = clitest.ExecuteCLICommand(t, app, LsCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "Lists (3)")
	assert.Contains(t, output, "1 open")
}
