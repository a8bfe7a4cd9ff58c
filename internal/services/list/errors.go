package list

import (
	"errors"

	"github.com/thenoetrevino/todo/internal/models"
)

// List-related errors
var (
	// Validation errors
	ErrEmptyName     = errors.New("list name cannot be empty")
	ErrNameTooLong   = errors.New("list name cannot exceed 50 characters")
	ErrInvalidColor  = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrInvalidListID = errors.New("invalid list ID")

	// Business logic errors
	ErrListNotFound = models.ErrListNotFound
)
