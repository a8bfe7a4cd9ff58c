package list

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/store"
)

const maxNameLength = 50

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all list-related business operations.
// Lists returned by every method carry a freshly computed Count.
type Service interface {
	GetLists(ctx context.Context) ([]models.List, error)
	GetList(ctx context.Context, id string) (models.List, error)
	CreateList(ctx context.Context, req CreateListRequest) (models.List, error)
}

// CreateListRequest encapsulates data for creating a list
type CreateListRequest struct {
	Name  string
	Color string
}

type service struct {
	store *store.Store
}

// NewService creates a new list service
func NewService(s *store.Store) Service {
	return &service{store: s}
}

func (s *service) GetLists(ctx context.Context) ([]models.List, error) {
	return s.store.GetLists(ctx)
}

func (s *service) GetList(ctx context.Context, id string) (models.List, error) {
	if strings.TrimSpace(id) == "" {
		return models.List{}, ErrInvalidListID
	}

	list, found, err := s.store.GetListByID(ctx, id)
	if err != nil {
		return models.List{}, fmt.Errorf("failed to get list: %w", err)
	}
	if !found {
		return models.List{}, ErrListNotFound
	}
	return list, nil
}

func (s *service) CreateList(ctx context.Context, req CreateListRequest) (models.List, error) {
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return models.List{}, ErrEmptyName
	case len(name) > maxNameLength:
		return models.List{}, ErrNameTooLong
	case !hexColorRegex.MatchString(req.Color):
		return models.List{}, ErrInvalidColor
	}

	list, err := s.store.CreateList(ctx, name, req.Color)
	if err != nil {
		return models.List{}, fmt.Errorf("failed to create list: %w", err)
	}
	return list, nil
}
