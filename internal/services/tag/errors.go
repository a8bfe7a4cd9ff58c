package tag

import (
	"errors"

	"github.com/thenoetrevino/todo/internal/models"
)

// Tag-related errors
var (
	// Validation errors
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = errors.New("name cannot exceed 50 characters")
	ErrInvalidColor = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrInvalidTagID = errors.New("invalid tag ID")

	// Business logic errors
	ErrTagNotFound = models.ErrTagNotFound
)
