package cli

import (
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Color Validation Tests
// ============================================================================

func TestValidateColorHex_Valid(t *testing.T) {
	tests := []string{
		"#FF0000", // Red
		"#000000", // Black
		"#ff5733", // Lowercase
		"#AbCdEf", // Mixed case
	}

	for _, color := range tests {
		t.Run(color, func(t *testing.T) {
			if err := ValidateColorHex(color); err != nil {
				t.Errorf("Expected %s to be valid, got error: %v", color, err)
			}
		})
	}
}

func TestValidateColorHex_Invalid(t *testing.T) {
	tests := []struct {
		color       string
		description string
	}{
		{"FF0000", "missing # prefix"},
		{"#FFF", "too short (3 chars)"},
		{"#FF00000", "too long (7 chars)"},
		{"#GGGGGG", "invalid hex characters"},
		{"#FF 000", "contains space"},
		{"", "empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if err := ValidateColorHex(tt.color); err == nil {
				t.Errorf("Expected %s to be invalid (%s), but got no error", tt.color, tt.description)
			}
		})
	}
}

// ============================================================================
// Due Date Parsing Tests
// ============================================================================

func TestParseDueDate(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"today", time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)},
		{"Tomorrow", time.Date(2026, 10, 20, 23, 59, 0, 0, time.UTC)},
		{"+3d", time.Date(2026, 10, 22, 23, 59, 0, 0, time.UTC)},
		{"2026-12-24", time.Date(2026, 12, 24, 23, 59, 0, 0, time.UTC)},
		{"2026-12-24T09:30", time.Date(2026, 12, 24, 9, 30, 0, 0, time.UTC)},
		{"2026-12-24 09:30", time.Date(2026, 12, 24, 9, 30, 0, 0, time.UTC)},
		{"2026-12-24T09:30:00+02:00", time.Date(2026, 12, 24, 7, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDueDate(tt.in, now)
			if err != nil {
				t.Fatalf("ParseDueDate(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDueDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	now := time.Now()
	for _, in := range []string{"", "someday", "2026-13-01", "+xd"} {
		if _, err := ParseDueDate(in, now); err == nil {
			t.Errorf("Expected error for %q", in)
		}
	}
}

// ============================================================================
// Description Tests
// ============================================================================

func TestReadDescription(t *testing.T) {
	got, err := ReadDescription("inline", strings.NewReader("ignored"))
	if err != nil || got != "inline" {
		t.Errorf("ReadDescription(inline) = %q, %v", got, err)
	}

	got, err = ReadDescription("-", strings.NewReader("# Notes\n\nfrom stdin\n"))
	if err != nil {
		t.Fatalf("ReadDescription(-) error: %v", err)
	}
	if got != "# Notes\n\nfrom stdin" {
		t.Errorf("ReadDescription(-) = %q", got)
	}
}
