package models

// Category represents a product category as served by the backend.
type Category struct {
	ID          string   `json:"categoryId" validate:"omitempty"`
	Name        string   `json:"categoryName" validate:"required,min=3,max=100"`
	Tags        []string `json:"categoryTags" validate:"omitempty,dive,max=50"`
	Description string   `json:"categoryDescription" validate:"omitempty,max=500"`
}
