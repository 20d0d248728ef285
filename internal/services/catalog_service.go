package services

import (
	"strings"

	"billdesk/internal/api"
	"billdesk/internal/models"
)

// CatalogService handles the product and category catalog operations.
type CatalogService struct {
	products   api.ProductAPI
	categories api.CategoryAPI
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products api.ProductAPI, categories api.CategoryAPI) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
	}
}

// GetProducts retrieves the full product catalog.
func (s *CatalogService) GetProducts() ([]models.Product, error) {
	return s.products.GetProducts()
}

// CreateProduct adds a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.products.CreateProduct(product)
}

// EditProduct updates an existing product.
func (s *CatalogService) EditProduct(product *models.Product) error {
	return s.products.EditProduct(product)
}

// DeleteProduct removes a product by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.products.DeleteProduct(id)
}

// GetCategories retrieves all categories.
func (s *CatalogService) GetCategories() ([]models.Category, error) {
	return s.categories.GetCategories()
}

// CreateCategory adds a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	return s.categories.CreateCategory(category)
}

// EditCategory updates an existing category.
func (s *CatalogService) EditCategory(category *models.Category) error {
	return s.categories.EditCategory(category)
}

// DeleteCategory removes a category by its ID.
func (s *CatalogService) DeleteCategory(id string) error {
	return s.categories.DeleteCategory(id)
}

// FilterProductsByName returns the products whose name contains query,
// case-insensitive. An empty query returns the full list.
func FilterProductsByName(products []models.Product, query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), query) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// FilterCategoriesByName returns the categories whose name contains query,
// case-insensitive.
func FilterCategoriesByName(categories []models.Category, query string) []models.Category {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return categories
	}

	filtered := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if strings.Contains(strings.ToLower(category.Name), query) {
			filtered = append(filtered, category)
		}
	}
	return filtered
}
