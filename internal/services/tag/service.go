package tag

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/store"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all tag-related business operations
type Service interface {
	// Read operations
	GetTags(ctx context.Context) ([]models.Tag, error)
	GetTag(ctx context.Context, id string) (models.Tag, error)

	// Write operations
	CreateTag(ctx context.Context, req CreateTagRequest) (models.Tag, error)
}

// CreateTagRequest encapsulates data for creating a tag
type CreateTagRequest struct {
	Name  string
	Color string // Hex color like #FF5733
}

// service implements Service interface
type service struct {
	store *store.Store
}

// NewService creates a new tag service
func NewService(s *store.Store) Service {
	return &service{store: s}
}

// GetTags retrieves all tags
func (s *service) GetTags(ctx context.Context) ([]models.Tag, error) {
	return s.store.GetTags(ctx)
}

// GetTag retrieves a single tag
func (s *service) GetTag(ctx context.Context, id string) (models.Tag, error) {
	if strings.TrimSpace(id) == "" {
		return models.Tag{}, ErrInvalidTagID
	}

	tag, found, err := s.store.GetTagByID(ctx, id)
	if err != nil {
		return models.Tag{}, fmt.Errorf("failed to get tag: %w", err)
	}
	if !found {
		return models.Tag{}, ErrTagNotFound
	}
	return tag, nil
}

// CreateTag creates a new tag with validation
func (s *service) CreateTag(ctx context.Context, req CreateTagRequest) (models.Tag, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateCreateTag(req); err != nil {
		return models.Tag{}, err
	}

	tag, err := s.store.CreateTag(ctx, req.Name, req.Color)
	if err != nil {
		return models.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// validateCreateTag validates a CreateTagRequest
func validateCreateTag(req CreateTagRequest) error {
	if req.Name == "" {
		return ErrEmptyName
	}
	if len(req.Name) > 50 {
		return ErrNameTooLong
	}
	if !hexColorRegex.MatchString(req.Color) {
		return ErrInvalidColor
	}
	return nil
}
