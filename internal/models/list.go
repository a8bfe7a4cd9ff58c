package models

// List is a named, colored grouping of tasks.
// Count is the number of incomplete tasks in the list. It is recomputed on
// every read and never trusted from storage.
type List struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#ef4444")
	Count int    `json:"count"`
}
