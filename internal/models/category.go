package models

// Category ("mold") is an admin-managed label constraining the category
// field of new production entries. Removing a category does not touch
// entries that already reference it.
type Category struct {
	Label string `json:"label"`
}
