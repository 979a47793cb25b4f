package models

// Entry is a learning resource filed under a category.
type Entry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Links       string `json:"links"`
	CategoryID  int64  `json:"category_id"`
	IsDeleted   bool   `json:"is_deleted"`
}

type NewEntryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Links       string `json:"links"`
	Keywords    string `json:"keywords"`
}
