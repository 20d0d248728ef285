package api

import (
	"fmt"

	"billdesk/internal/models"
)

// ProductAPI defines the product catalog endpoints.
type ProductAPI interface {
	GetProducts() ([]models.Product, error)
	CreateProduct(product *models.Product) error
	EditProduct(product *models.Product) error
	DeleteProduct(id string) error
}

// GetProducts returns the complete product catalog.
func (c *Client) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := c.get("product/getProduct", "", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// CreateProduct adds a new product to the catalog.
func (c *Client) CreateProduct(product *models.Product) error {
	if err := c.post("product/createProduct", product, nil); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// EditProduct updates an existing catalog product.
func (c *Client) EditProduct(product *models.Product) error {
	if err := c.post("product/editProduct", product, nil); err != nil {
		return fmt.Errorf("failed to edit product %s: %w", product.ID, err)
	}
	return nil
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(id string) error {
	if err := c.get("product/deleteProduct/"+id, "", nil); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
