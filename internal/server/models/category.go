package models

// Category is a node of the catalog tree. A nil ParentID marks a root.
type Category struct {
	ID          int64  `json:"id"`
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id"`
}

// NewCategoryRequest creates a category; parent_id may be omitted.
type NewCategoryRequest struct {
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id"`
}

// UpdateCategoryRequest replaces every column of a category. parent_id must
// be present and may be null.
type UpdateCategoryRequest struct {
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id" codec:"required"`
}
