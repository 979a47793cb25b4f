package models

// IDResponse reports the id of a created or updated row.
type IDResponse struct {
	ID int64 `json:"id"`
}

// ListResponse wraps a listing.
type ListResponse[T any] struct {
	Results []T `json:"results"`
}

// Empty is the payload of operations that return nothing.
type Empty struct{}
