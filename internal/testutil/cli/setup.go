package cli

import (
	"testing"
	"time"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// SetupCLITest creates an app over an in-memory backend with a frozen UTC
// clock and referential checks on, matching the CLI defaults. Default lists
// and tags are seeded on first use; sample tasks are not.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return SetupCLITestWithBackend(t, testutil.SetupTestBackend(t))
}

// SetupCLITestWithBackend is SetupCLITest over a caller-provided backend,
// for tests that need to plant raw data
func SetupCLITestWithBackend(t *testing.T, backend database.Backend) *app.App {
	t.Helper()

	appInstance, err := app.New(backend,
		app.WithClock(testutil.FixedClock(testutil.Now)),
		app.WithLocation(time.UTC),
		app.WithReferentialChecks(true),
		app.WithoutSampleTasks(),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	return appInstance
}
