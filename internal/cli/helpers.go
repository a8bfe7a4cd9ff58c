package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// dueLayouts are tried in order after the relative keywords
var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseDueDate parses a --due value relative to now.
// Accepted forms: "today", "tomorrow", "+Nd", RFC 3339, "YYYY-MM-DDTHH:MM",
// "YYYY-MM-DD HH:MM" and "YYYY-MM-DD". Values without a zone are read in
// now's location; date-only values are due at the end of that day.
func ParseDueDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	loc := now.Location()
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, loc)
	}

	switch value {
	case "":
		return time.Time{}, fmt.Errorf("due date cannot be empty")
	case "today":
		return endOfDay(now), nil
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1)), nil
	}

	if strings.HasPrefix(value, "+") && strings.HasSuffix(value, "d") {
		var days int
		if _, err := fmt.Sscanf(value, "+%dd", &days); err == nil && days >= 0 {
			return endOfDay(now.AddDate(0, 0, days)), nil
		}
	}

	for _, layout := range dueLayouts {
		t, err := time.ParseInLocation(layout, strings.ToUpper(value), loc)
		if err != nil {
			continue
		}
		if layout == time.DateOnly {
			return endOfDay(t), nil
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid due date %q (use today, tomorrow, +3d, YYYY-MM-DD or YYYY-MM-DDTHH:MM)", value)
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
