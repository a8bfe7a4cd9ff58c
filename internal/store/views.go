package store

import (
	"context"

	"github.com/thenoetrevino/todo/internal/models"
)

// GetTodayTasks returns tasks whose due date falls on today's date in the
// store's location
func (s *Store) GetTodayTasks(ctx context.Context) ([]models.Task, error) {
	today := s.Now()
	return s.filterTasks(ctx, func(t models.Task) bool {
		return t.IsDueOn(today)
	})
}

// GetUpcomingTasks returns tasks due strictly after the current instant.
// Tasks due later today are included.
func (s *Store) GetUpcomingTasks(ctx context.Context) ([]models.Task, error) {
	now := s.now()
	return s.filterTasks(ctx, func(t models.Task) bool {
		return t.IsDueAfter(now)
	})
}

// GetTasksByTag returns the tasks that reference tagID
func (s *Store) GetTasksByTag(ctx context.Context, tagID string) ([]models.Task, error) {
	return s.filterTasks(ctx, func(t models.Task) bool {
		return t.HasTag(tagID)
	})
}
