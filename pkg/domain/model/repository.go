package model

// Repository is the subset of a GitHub organization repository listing item
// that the export pipeline needs.
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Archived bool   `json:"archived"`
}
