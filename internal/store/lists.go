package store

import (
	"context"
	"slices"

	"github.com/thenoetrevino/todo/internal/models"
)

// GetLists returns every list with Count recomputed from the current tasks.
// An empty collection is seeded with DefaultLists first.
func (s *Store) GetLists(ctx context.Context) ([]models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listsWithCounts(ctx)
}

// GetListByID returns the list with the given ID and its current count
func (s *Store) GetListByID(ctx context.Context, id string) (models.List, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.listsWithCounts(ctx)
	if err != nil {
		return models.List{}, false, err
	}
	idx := slices.IndexFunc(lists, func(l models.List) bool { return l.ID == id })
	if idx < 0 {
		return models.List{}, false, nil
	}
	return lists[idx], true, nil
}

// CreateList appends a list with a new ID and zero count
func (s *Store) CreateList(ctx context.Context, name, color string) (models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.loadLists(ctx)
	if err != nil {
		return models.List{}, err
	}

	list := models.List{
		ID: s.newID(func(id string) bool {
			return slices.ContainsFunc(lists, func(l models.List) bool { return l.ID == id })
		}),
		Name:  name,
		Color: color,
	}
	lists = append(lists, list)

	if err := writeCollection(ctx, s, KeyLists, lists); err != nil {
		return models.List{}, err
	}

	s.logger.Debug("list created", "id", list.ID, "name", name)
	return list, nil
}

// listsWithCounts loads lists and projects the incomplete task count.
// Callers must hold s.mu.
func (s *Store) listsWithCounts(ctx context.Context) ([]models.List, error) {
	lists, err := s.loadLists(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(lists))
	for _, t := range tasks {
		if !t.Completed {
			counts[t.ListID]++
		}
	}
	for i := range lists {
		lists[i].Count = counts[lists[i].ID]
	}
	return lists, nil
}

// loadLists reads the list collection, seeding it when empty. Counts are
// zeroed: the stored value is never authoritative. Callers must hold s.mu.
func (s *Store) loadLists(ctx context.Context) ([]models.List, error) {
	lists, err := readCollection[models.List](ctx, s, KeyLists)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		lists = DefaultLists()
		if err := writeCollection(ctx, s, KeyLists, lists); err != nil {
			return nil, err
		}
		s.logger.Debug("seeded default lists", "count", len(lists))
	}
	for i := range lists {
		lists[i].Count = 0
	}
	return lists, nil
}
