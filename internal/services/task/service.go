package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/store"
)

const maxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	GetView(ctx context.Context, view View) ([]models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (models.Task, error)

	// Subtasks
	AddSubtask(ctx context.Context, taskID, title string) (models.Task, error)
	ToggleSubtask(ctx context.Context, taskID, subtaskID string) (models.Task, error)
	RemoveSubtask(ctx context.Context, taskID, subtaskID string) (models.Task, error)

	// Tag management
	AttachTag(ctx context.Context, taskID, tagID string) (models.Task, error)
	DetachTag(ctx context.Context, taskID, tagID string) (models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	ListID      string
	DueDate     *time.Time
	Completed   bool
	TagIDs      []string
	Subtasks    []string // Subtask titles, created incomplete
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	ID           string
	Title        *string
	Description  *string
	Completed    *bool
	DueDate      *time.Time
	ClearDueDate bool
	ListID       *string
	TagIDs       *[]string
}

// service implements Service interface
type service struct {
	store *store.Store
}

// NewService creates a new task service
func NewService(s *store.Store) Service {
	return &service{store: s}
}

// GetTasks returns every task
func (s *service) GetTasks(ctx context.Context) ([]models.Task, error) {
	return s.store.GetTasks(ctx)
}

// GetTask returns one task or ErrTaskNotFound
func (s *service) GetTask(ctx context.Context, id string) (models.Task, error) {
	if err := validateID(id, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}
	return s.found(s.store.GetTaskByID(ctx, id))
}

// GetView returns the tasks selected by view
func (s *service) GetView(ctx context.Context, view View) ([]models.Task, error) {
	switch view.Kind {
	case ViewAll, "":
		return s.store.GetTasks(ctx)
	case ViewToday:
		return s.store.GetTodayTasks(ctx)
	case ViewUpcoming:
		return s.store.GetUpcomingTasks(ctx)
	case ViewList:
		if err := validateID(view.ID, ErrInvalidListID); err != nil {
			return nil, err
		}
		return s.store.GetTasksByList(ctx, view.ID)
	case ViewTag:
		if err := validateID(view.ID, ErrInvalidTagID); err != nil {
			return nil, err
		}
		return s.store.GetTasksByTag(ctx, view.ID)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidView, view.String())
}

// CreateTask handles task creation with validation
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return models.Task{}, err
	}
	if err := validateID(req.ListID, ErrInvalidListID); err != nil {
		return models.Task{}, err
	}

	subtasks := make([]models.Subtask, 0, len(req.Subtasks))
	for _, st := range req.Subtasks {
		st = strings.TrimSpace(st)
		if st == "" {
			return models.Task{}, ErrEmptySubtaskTitle
		}
		subtasks = append(subtasks, models.Subtask{Title: st})
	}

	task, err := s.store.CreateTask(ctx, models.NewTask{
		Title:       title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
		ListID:      req.ListID,
		Tags:        req.TagIDs,
		Subtasks:    subtasks,
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask applies the non-nil fields of req
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error) {
	if err := validateID(req.ID, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}

	patch := models.TaskPatch{
		Description:  req.Description,
		Completed:    req.Completed,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		ListID:       req.ListID,
		Tags:         req.TagIDs,
	}
	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return models.Task{}, err
		}
		patch.Title = &title
	}
	if req.ListID != nil {
		if err := validateID(*req.ListID, ErrInvalidListID); err != nil {
			return models.Task{}, err
		}
	}
	if patch.IsEmpty() {
		return models.Task{}, ErrNoChanges
	}

	return s.found(s.store.UpdateTask(ctx, req.ID, patch))
}

// DeleteTask removes a task or returns ErrTaskNotFound
func (s *service) DeleteTask(ctx context.Context, id string) error {
	if err := validateID(id, ErrInvalidTaskID); err != nil {
		return err
	}

	removed, err := s.store.DeleteTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !removed {
		return ErrTaskNotFound
	}
	return nil
}

// ToggleTask flips the completion flag
func (s *service) ToggleTask(ctx context.Context, id string) (models.Task, error) {
	if err := validateID(id, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}
	return s.found(s.store.ToggleTask(ctx, id))
}

// AddSubtask appends an incomplete subtask
func (s *service) AddSubtask(ctx context.Context, taskID, title string) (models.Task, error) {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptySubtaskTitle
	}
	return s.found(s.store.AddSubtask(ctx, taskID, title))
}

// ToggleSubtask flips the completion flag of one subtask
func (s *service) ToggleSubtask(ctx context.Context, taskID, subtaskID string) (models.Task, error) {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}
	if err := validateID(subtaskID, ErrInvalidSubtaskID); err != nil {
		return models.Task{}, err
	}
	return s.found(s.store.ToggleSubtask(ctx, taskID, subtaskID))
}

// RemoveSubtask deletes one subtask
func (s *service) RemoveSubtask(ctx context.Context, taskID, subtaskID string) (models.Task, error) {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}
	if err := validateID(subtaskID, ErrInvalidSubtaskID); err != nil {
		return models.Task{}, err
	}
	return s.found(s.store.RemoveSubtask(ctx, taskID, subtaskID))
}

// AttachTag adds a tag to a task
func (s *service) AttachTag(ctx context.Context, taskID, tagID string) (models.Task, error) {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}
	if err := validateID(tagID, ErrInvalidTagID); err != nil {
		return models.Task{}, err
	}
	return s.found(s.store.AttachTag(ctx, taskID, tagID))
}

// DetachTag removes a tag from a task
func (s *service) DetachTag(ctx context.Context, taskID, tagID string) (models.Task, error) {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return models.Task{}, err
	}
	if err := validateID(tagID, ErrInvalidTagID); err != nil {
		return models.Task{}, err
	}
	return s.found(s.store.DetachTag(ctx, taskID, tagID))
}

// found turns the store's (task, found, err) triple into (task, err)
func (s *service) found(task models.Task, ok bool, err error) (models.Task, error) {
	if err != nil {
		return models.Task{}, err
	}
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// validateTitle trims and checks a task title
func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func validateID(id string, errInvalid error) error {
	if strings.TrimSpace(id) == "" {
		return errInvalid
	}
	return nil
}
