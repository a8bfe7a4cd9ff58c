package list

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/store"
)

func setupTestService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	backend := database.NewMemoryBackend()
	t.Cleanup(func() { _ = backend.Close() })
	s := store.New(backend, store.WithSampleTasks([]models.Task{}))
	return NewService(s), s
}

func TestCreateList(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	list, err := svc.CreateList(ctx, CreateListRequest{Name: "Errands", Color: "#10b981"})
	require.NoError(t, err)
	assert.Equal(t, "Errands", list.Name)
	assert.Equal(t, 0, list.Count)

	lists, err := svc.GetLists(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 4)
}

func TestCreateList_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	tests := []struct {
		name    string
		req     CreateListRequest
		wantErr error
	}{
		{"empty name", CreateListRequest{Name: "", Color: "#000000"}, ErrEmptyName},
		{"blank name", CreateListRequest{Name: "  \t", Color: "#000000"}, ErrEmptyName},
		{"long name", CreateListRequest{Name: strings.Repeat("x", 51), Color: "#000000"}, ErrNameTooLong},
		{"bad color", CreateListRequest{Name: "ok", Color: "red"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateList(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetList_Count(t *testing.T) {
	t.Parallel()
	svc, s := setupTestService(t)
	ctx := context.Background()

	_, err := s.CreateTask(ctx, models.NewTask{Title: "open", ListID: "2"})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, models.NewTask{Title: "done", ListID: "2", Completed: true})
	require.NoError(t, err)

	list, err := svc.GetList(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Work", list.Name)
	assert.Equal(t, 1, list.Count, "completed tasks are not counted")
}

func TestGetList_Errors(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	_, err := svc.GetList(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidListID)

	_, err = svc.GetList(context.Background(), "404")
	assert.True(t, errors.Is(err, models.ErrListNotFound))
}
