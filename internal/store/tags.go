package store

import (
	"context"
	"slices"

	"github.com/thenoetrevino/todo/internal/models"
)

// GetTags returns every tag. An empty collection is seeded with DefaultTags.
func (s *Store) GetTags(ctx context.Context) ([]models.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTags(ctx)
}

// GetTagByID returns the tag with the given ID
func (s *Store) GetTagByID(ctx context.Context, id string) (models.Tag, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags, err := s.loadTags(ctx)
	if err != nil {
		return models.Tag{}, false, err
	}
	idx := slices.IndexFunc(tags, func(t models.Tag) bool { return t.ID == id })
	if idx < 0 {
		return models.Tag{}, false, nil
	}
	return tags[idx], true, nil
}

// CreateTag appends a tag with a new ID
func (s *Store) CreateTag(ctx context.Context, name, color string) (models.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags, err := s.loadTags(ctx)
	if err != nil {
		return models.Tag{}, err
	}

	tag := models.Tag{
		ID: s.newID(func(id string) bool {
			return slices.ContainsFunc(tags, func(t models.Tag) bool { return t.ID == id })
		}),
		Name:  name,
		Color: color,
	}
	tags = append(tags, tag)

	if err := writeCollection(ctx, s, KeyTags, tags); err != nil {
		return models.Tag{}, err
	}

	s.logger.Debug("tag created", "id", tag.ID, "name", name)
	return tag, nil
}

// loadTags reads the tag collection, seeding it when empty.
// Callers must hold s.mu.
func (s *Store) loadTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := readCollection[models.Tag](ctx, s, KeyTags)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		return tags, nil
	}

	tags = DefaultTags()
	if err := writeCollection(ctx, s, KeyTags, tags); err != nil {
		return nil, err
	}
	s.logger.Debug("seeded default tags", "count", len(tags))
	return tags, nil
}
