package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/thenoetrevino/todo/internal/models"
)

// GetTasks returns every task. An empty collection is seeded with the
// sample tasks, which are persisted before being returned.
func (s *Store) GetTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTasks(ctx)
}

// GetTasksByList returns the tasks whose ListID equals listID
func (s *Store) GetTasksByList(ctx context.Context, listID string) ([]models.Task, error) {
	return s.filterTasks(ctx, func(t models.Task) bool {
		return t.ListID == listID
	})
}

// GetTaskByID returns the first task with the given ID.
// found is false when no task matches; that is not an error.
func (s *Store) GetTaskByID(ctx context.Context, id string) (task models.Task, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return models.Task{}, false, err
	}
	idx := indexOfTask(tasks, id)
	if idx < 0 {
		return models.Task{}, false, nil
	}
	return tasks[idx], true, nil
}

// CreateTask assigns an ID and timestamps, appends the task and rewrites
// the collection. Subtasks without an ID get one.
func (s *Store) CreateTask(ctx context.Context, in models.NewTask) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return models.Task{}, err
	}

	if s.checkRefs {
		if err := s.checkReferences(ctx, &in.ListID, &in.Tags); err != nil {
			return models.Task{}, err
		}
	}

	now := s.timestamp()
	task := models.Task{
		ID: s.newID(func(id string) bool {
			return indexOfTask(tasks, id) >= 0
		}),
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		DueDate:     in.DueDate,
		ListID:      in.ListID,
		Tags:        in.Tags,
		Subtasks:    in.Subtasks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}.Clone()
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}
	canonicalDue(&task)
	for i := range task.Subtasks {
		if task.Subtasks[i].ID == "" {
			task.Subtasks[i].ID = s.newID(func(id string) bool {
				return task.SubtaskIndex(id) >= 0
			})
		}
	}

	tasks = append(tasks, task)
	if err := writeCollection(ctx, s, KeyTasks, tasks); err != nil {
		return models.Task{}, err
	}

	s.logger.Debug("task created", "id", task.ID, "list_id", task.ListID)
	return task.Clone(), nil
}

// UpdateTask shallow-merges patch over the task with the given ID and
// stamps UpdatedAt. found is false, with nothing written, when no task
// matches.
func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (task models.Task, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modifyTask(ctx, id, func(t *models.Task) error {
		if s.checkRefs {
			if err := s.checkReferences(ctx, patch.ListID, patch.Tags); err != nil {
				return err
			}
		}
		*t = patch.Apply(*t)
		return nil
	})
}

// DeleteTask removes the task with the given ID and reports whether one
// was removed. The collection is only rewritten on removal.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return false, err
	}

	remaining := slices.DeleteFunc(slices.Clone(tasks), func(t models.Task) bool {
		return t.ID == id
	})
	if len(remaining) == len(tasks) {
		return false, nil
	}

	if err := writeCollection(ctx, s, KeyTasks, remaining); err != nil {
		return false, err
	}

	s.logger.Debug("task deleted", "id", id)
	return true, nil
}

// ToggleTask flips the completion flag of a task
func (s *Store) ToggleTask(ctx context.Context, id string) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modifyTask(ctx, id, func(t *models.Task) error {
		t.Completed = !t.Completed
		return nil
	})
}

// AddSubtask appends a new, incomplete subtask to a task
func (s *Store) AddSubtask(ctx context.Context, taskID, title string) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modifyTask(ctx, taskID, func(t *models.Task) error {
		id := s.newID(func(id string) bool {
			return t.SubtaskIndex(id) >= 0
		})
		t.Subtasks = append(t.Subtasks, models.Subtask{ID: id, Title: title})
		return nil
	})
}

// ToggleSubtask flips the completion flag of one subtask.
// Returns models.ErrSubtaskNotFound if the task has no such subtask.
func (s *Store) ToggleSubtask(ctx context.Context, taskID, subtaskID string) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modifyTask(ctx, taskID, func(t *models.Task) error {
		idx := t.SubtaskIndex(subtaskID)
		if idx < 0 {
			return models.ErrSubtaskNotFound
		}
		t.Subtasks[idx].Completed = !t.Subtasks[idx].Completed
		return nil
	})
}

// RemoveSubtask deletes one subtask from a task.
// Returns models.ErrSubtaskNotFound if the task has no such subtask.
func (s *Store) RemoveSubtask(ctx context.Context, taskID, subtaskID string) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modifyTask(ctx, taskID, func(t *models.Task) error {
		idx := t.SubtaskIndex(subtaskID)
		if idx < 0 {
			return models.ErrSubtaskNotFound
		}
		t.Subtasks = slices.Delete(t.Subtasks, idx, idx+1)
		return nil
	})
}

// AttachTag adds tagID to a task unless it is already there
func (s *Store) AttachTag(ctx context.Context, taskID, tagID string) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modifyTask(ctx, taskID, func(t *models.Task) error {
		if s.checkRefs {
			tags := []string{tagID}
			if err := s.checkReferences(ctx, nil, &tags); err != nil {
				return err
			}
		}
		if !t.HasTag(tagID) {
			t.Tags = append(t.Tags, tagID)
		}
		return nil
	})
}

// DetachTag removes every occurrence of tagID from a task
func (s *Store) DetachTag(ctx context.Context, taskID, tagID string) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modifyTask(ctx, taskID, func(t *models.Task) error {
		t.Tags = slices.DeleteFunc(t.Tags, func(id string) bool {
			return id == tagID
		})
		return nil
	})
}

// modifyTask applies fn to a copy of the task, stamps UpdatedAt and
// rewrites the collection. fn only runs when the task exists, so a
// missing task never triggers reference checks or writes.
// Callers must hold s.mu.
func (s *Store) modifyTask(ctx context.Context, id string, fn func(*models.Task) error) (models.Task, bool, error) {
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return models.Task{}, false, err
	}

	idx := indexOfTask(tasks, id)
	if idx < 0 {
		return models.Task{}, false, nil
	}

	updated := tasks[idx].Clone()
	if err := fn(&updated); err != nil {
		return models.Task{}, true, err
	}
	updated.ID = tasks[idx].ID
	updated.CreatedAt = tasks[idx].CreatedAt
	canonicalDue(&updated)
	s.stamp(&updated)

	tasks[idx] = updated
	if err := writeCollection(ctx, s, KeyTasks, tasks); err != nil {
		return models.Task{}, true, err
	}

	return updated.Clone(), true, nil
}

// stamp sets UpdatedAt to now, never earlier than CreatedAt
func (s *Store) stamp(t *models.Task) {
	now := s.timestamp()
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

// loadTasks reads the task collection, seeding it when empty.
// Callers must hold s.mu.
func (s *Store) loadTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := readCollection[models.Task](ctx, s, KeyTasks)
	if err != nil {
		return nil, err
	}
	if len(tasks) > 0 {
		return tasks, nil
	}

	samples := stampSamples(s.samples(s.Now()), s.timestamp())
	if len(samples) == 0 {
		return []models.Task{}, nil
	}
	if err := writeCollection(ctx, s, KeyTasks, samples); err != nil {
		return nil, err
	}
	s.logger.Debug("seeded sample tasks", "count", len(samples))
	return samples, nil
}

// filterTasks returns the tasks matching keep
func (s *Store) filterTasks(ctx context.Context, keep func(models.Task) bool) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// checkReferences verifies that listID and tagIDs exist. Nil arguments are
// skipped. Callers must hold s.mu.
func (s *Store) checkReferences(ctx context.Context, listID *string, tagIDs *[]string) error {
	if listID != nil {
		lists, err := s.loadLists(ctx)
		if err != nil {
			return err
		}
		if !slices.ContainsFunc(lists, func(l models.List) bool { return l.ID == *listID }) {
			return fmt.Errorf("%w: %q", ErrUnknownList, *listID)
		}
	}

	if tagIDs != nil && len(*tagIDs) > 0 {
		tags, err := s.loadTags(ctx)
		if err != nil {
			return err
		}
		for _, id := range *tagIDs {
			if !slices.ContainsFunc(tags, func(t models.Tag) bool { return t.ID == id }) {
				return fmt.Errorf("%w: %q", ErrUnknownTag, id)
			}
		}
	}

	return nil
}

func indexOfTask(tasks []models.Task, id string) int {
	return slices.IndexFunc(tasks, func(t models.Task) bool {
		return t.ID == id
	})
}
