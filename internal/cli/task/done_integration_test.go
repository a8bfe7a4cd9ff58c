package task

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

func listCount(t *testing.T, lists []models.List, id string) int {
	t.Helper()
	for _, l := range lists {
		if l.ID == id {
			return l.Count
		}
	}
	t.Fatalf("list %s not found", id)
	return 0
}

func TestDoneTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	ctx := context.Background()
	taskID := testutil.CreateTestTask(t, app.Store(), "1", "Finish me")
	testutil.CreateTestTask(t, app.Store(), "1", "Other")

	lists, err := app.ListService.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, listCount(t, lists, "1"))

	output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{taskID})
	require.NoError(t, err)
	assert.Contains(t, output, "Task 'Finish me' completed")

	lists, err = app.ListService.GetLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, listCount(t, lists, "1"), "completing a task decrements its list count")

	t.Run("Done is idempotent", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{taskID})
		require.NoError(t, err)
		task, _, err := app.Store().GetTaskByID(ctx, taskID)
		require.NoError(t, err)
		assert.True(t, task.Completed)
	})

	t.Run("Undo", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{taskID, "--undo", "--json"})
		require.NoError(t, err)
		var task models.Task
		testutil.ParseJSONData(t, output, &task)
		assert.False(t, task.Completed)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{"404"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestToggleTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	taskID := testutil.CreateTestTask(t, app.Store(), "1", "Flip me")

	output, err := clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{taskID})
	require.NoError(t, err)
	assert.Contains(t, output, "is now completed")

	output, err = clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{taskID, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, taskID, strings.TrimSpace(output))

	task, _, err := app.Store().GetTaskByID(context.Background(), taskID)
	require.NoError(t, err)
	assert.False(t, task.Completed)
}
