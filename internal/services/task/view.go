package task

import (
	"fmt"
	"strings"
)

// ViewKind selects which subset of tasks a view shows
type ViewKind string

const (
	ViewAll      ViewKind = "all"
	ViewToday    ViewKind = "today"
	ViewUpcoming ViewKind = "upcoming"
	ViewList     ViewKind = "list"
	ViewTag      ViewKind = "tag"
)

// View is a named task filter. ID is set for list and tag views only.
type View struct {
	Kind ViewKind
	ID   string
}

// ParseView parses "all", "today", "upcoming", "list:<id>" or "tag:<id>".
// An empty string is the all view.
func ParseView(s string) (View, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return View{Kind: ViewAll}, nil
	}

	kind, id, hasID := strings.Cut(s, ":")
	switch ViewKind(kind) {
	case ViewAll, ViewToday, ViewUpcoming:
		if hasID {
			return View{}, fmt.Errorf("%w: %q", ErrInvalidView, s)
		}
		return View{Kind: ViewKind(kind)}, nil
	case ViewList, ViewTag:
		if strings.TrimSpace(id) == "" {
			return View{}, fmt.Errorf("%w: %q", ErrInvalidView, s)
		}
		return View{Kind: ViewKind(kind), ID: strings.TrimSpace(id)}, nil
	}
	return View{}, fmt.Errorf("%w: %q", ErrInvalidView, s)
}

func (v View) String() string {
	if v.ID != "" {
		return string(v.Kind) + ":" + v.ID
	}
	return string(v.Kind)
}
