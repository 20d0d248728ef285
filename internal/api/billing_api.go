package api

import (
	"fmt"
	"net/url"

	"billdesk/internal/models"
)

// Billing periods accepted by FetchBillings.
const (
	PeriodToday   = "today"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// BillingAPI defines the billing endpoints the checkout flow depends on.
type BillingAPI interface {
	SearchProducts(nameFragment string) ([]models.ProductSnapshot, error)
	CreateBilling(order *models.Order) (*models.BillingReceipt, error)
	GetBillings() ([]models.BillingSummary, error)
	RecentBillings() ([]models.BillingSummary, error)
	FetchBillings(period string) ([]models.BillingSummary, error)
}

// SearchProducts returns catalog entries matching a partial product name,
// with stock and price captured at search time.
func (c *Client) SearchProducts(nameFragment string) ([]models.ProductSnapshot, error) {
	query := url.Values{"productName": {nameFragment}}.Encode()
	var results []models.ProductSnapshot
	if err := c.get("billing/searchproductforbilling", query, &results); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return results, nil
}

// CreateBilling submits a finalized order and returns the recorded receipt.
func (c *Client) CreateBilling(order *models.Order) (*models.BillingReceipt, error) {
	var receipt models.BillingReceipt
	if err := c.post("billing/createBilling", order, &receipt); err != nil {
		return nil, fmt.Errorf("failed to create billing: %w", err)
	}
	return &receipt, nil
}

// GetBillings returns the full billing list.
func (c *Client) GetBillings() ([]models.BillingSummary, error) {
	var billings []models.BillingSummary
	if err := c.get("billing/getBillings", "", &billings); err != nil {
		return nil, fmt.Errorf("failed to fetch billings: %w", err)
	}
	return billings, nil
}

// RecentBillings returns the most recent billings for the home view.
func (c *Client) RecentBillings() ([]models.BillingSummary, error) {
	var billings []models.BillingSummary
	if err := c.get("billing/recentbillings", "", &billings); err != nil {
		return nil, fmt.Errorf("failed to fetch recent billings: %w", err)
	}
	return billings, nil
}

// FetchBillings returns the billings for a period (today, monthly or yearly).
func (c *Client) FetchBillings(period string) ([]models.BillingSummary, error) {
	var billings []models.BillingSummary
	if err := c.get("billing/fetchbillings/"+period, "", &billings); err != nil {
		return nil, fmt.Errorf("failed to fetch %s billings: %w", period, err)
	}
	return billings, nil
}
