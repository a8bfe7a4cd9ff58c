package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
	"github.com/thenoetrevino/todo/internal/testutil"
	clitest "github.com/thenoetrevino/todo/internal/testutil/cli"
)

func TestShowTask(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task, err := app.TaskService.CreateTask(context.Background(), taskservice.CreateTaskRequest{
		Title:       "Plan trip",
		Description: "Book **flights** early",
		ListID:      "2",
		TagIDs:      []string{"2"},
		Subtasks:    []string{"Passport", "Hotel"},
	})
	require.NoError(t, err)

	t.Run("JSON", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{task.ID, "--json"})
		require.NoError(t, err)

		var got models.Task
		testutil.ParseJSONData(t, output, &got)
		assert.Equal(t, task.ID, got.ID)
		assert.Equal(t, task.Description, got.Description)
		assert.Len(t, got.Subtasks, 2)
	})

	t.Run("Quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{task.ID, "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, task.ID, strings.TrimSpace(output))
	})

	t.Run("Human", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{task.ID})
		require.NoError(t, err)
		assert.Contains(t, output, "Plan trip")
		assert.Contains(t, output, "Subtasks 0/2")
		assert.Contains(t, output, "Passport")
		assert.Contains(t, output, "[Work]")
		assert.Contains(t, output, "[Tag 2]")
		assert.Contains(t, output, "flights")
	})
}

func TestShowTask_Negative(t *testing.T) {
	app := clitest.SetupCLITest(t)

	t.Run("Not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"404"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("Missing ID", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("JSON not found envelope", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"404", "--json"})
		require.Error(t, err)

		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	})
}
