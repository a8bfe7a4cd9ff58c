package config

// Theme defines the colors used for human-readable CLI output
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"`
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text: timestamps, ids
	Normal string `yaml:"normal"`

	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return Theme{
		Preset:  "default",
		Accent:  "#874BFD",
		Title:   "#D75FD7",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Title:   "#FFFFFF",
		Subtle:  "#808080",
		Normal:  "#D0D0D0",
		Success: "#FFFFFF",
		Warning: "#D0D0D0",
		Error:   "#FFFFFF",
	}
}

// ThemePreset returns a preset theme by name
func ThemePreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing colors from the selected preset
func (t *Theme) ApplyDefaults() {
	preset := ThemePreset(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&t.Accent, preset.Accent)
	fill(&t.Title, preset.Title)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Normal, preset.Normal)
	fill(&t.Success, preset.Success)
	fill(&t.Warning, preset.Warning)
	fill(&t.Error, preset.Error)
}

// MergeFrom copies every non-empty color from other
func (t *Theme) MergeFrom(other Theme) {
	merge := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	merge(&t.Preset, other.Preset)
	merge(&t.Accent, other.Accent)
	merge(&t.Title, other.Title)
	merge(&t.Subtle, other.Subtle)
	merge(&t.Normal, other.Normal)
	merge(&t.Success, other.Success)
	merge(&t.Warning, other.Warning)
	merge(&t.Error, other.Error)
}
