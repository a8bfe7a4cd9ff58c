package models

// Tag is a label that tasks reference by ID.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#a8dadc")
}
