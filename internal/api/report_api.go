package api

import (
	"fmt"

	"billdesk/internal/models"
)

// ReportAPI defines the reporting endpoints.
type ReportAPI interface {
	TopCustomers() ([]models.TopCustomer, error)
	PaymentMethodReports() ([]models.PaymentMethodReport, error)
	LastThreeMonthsReports() ([]models.MonthlyRevenue, error)
}

// TopCustomers returns the customers with the highest billed totals.
func (c *Client) TopCustomers() ([]models.TopCustomer, error) {
	var customers []models.TopCustomer
	if err := c.get("report/topcustomer", "", &customers); err != nil {
		return nil, fmt.Errorf("failed to fetch top customers: %w", err)
	}
	return customers, nil
}

// PaymentMethodReports returns billing totals grouped by payment method.
func (c *Client) PaymentMethodReports() ([]models.PaymentMethodReport, error) {
	var reports []models.PaymentMethodReport
	if err := c.get("report/paymentmethodreports", "", &reports); err != nil {
		return nil, fmt.Errorf("failed to fetch payment method reports: %w", err)
	}
	return reports, nil
}

// LastThreeMonthsReports returns the billed amount per month for the
// trailing three months.
func (c *Client) LastThreeMonthsReports() ([]models.MonthlyRevenue, error) {
	var months []models.MonthlyRevenue
	if err := c.get("report/lastthreemonthsreports", "", &months); err != nil {
		return nil, fmt.Errorf("failed to fetch last three months reports: %w", err)
	}
	return months, nil
}
