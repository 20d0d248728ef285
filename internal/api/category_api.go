package api

import (
	"fmt"

	"billdesk/internal/models"
)

// CategoryAPI defines the category catalog endpoints.
type CategoryAPI interface {
	GetCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
	EditCategory(category *models.Category) error
	DeleteCategory(id string) error
}

// GetCategories returns all categories.
func (c *Client) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := c.get("category/getCategory", "", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a new category.
func (c *Client) CreateCategory(category *models.Category) error {
	if err := c.post("category/createCategory", category, nil); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// EditCategory updates an existing category.
func (c *Client) EditCategory(category *models.Category) error {
	if err := c.post("category/editCategory", category, nil); err != nil {
		return fmt.Errorf("failed to edit category %s: %w", category.ID, err)
	}
	return nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(id string) error {
	if err := c.get("category/deleteCategory/"+id, "", nil); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}
