package services

import (
	"billdesk/internal/api"
	"billdesk/internal/models"
)

// ReportService fetches the billing summaries and reports backing the home
// and reports views.
type ReportService struct {
	billing api.BillingAPI
	reports api.ReportAPI
}

// NewReportService creates a new ReportService.
func NewReportService(billing api.BillingAPI, reports api.ReportAPI) *ReportService {
	return &ReportService{
		billing: billing,
		reports: reports,
	}
}

// RecentBillings returns the latest billings.
func (s *ReportService) RecentBillings() ([]models.BillingSummary, error) {
	return s.billing.RecentBillings()
}

// TodayBillings returns today's billings.
func (s *ReportService) TodayBillings() ([]models.BillingSummary, error) {
	return s.billing.FetchBillings(api.PeriodToday)
}

// MonthlyBillings returns the current month's billings.
func (s *ReportService) MonthlyBillings() ([]models.BillingSummary, error) {
	return s.billing.FetchBillings(api.PeriodMonthly)
}

// YearlyBillings returns the current year's billings.
func (s *ReportService) YearlyBillings() ([]models.BillingSummary, error) {
	return s.billing.FetchBillings(api.PeriodYearly)
}

// TopCustomers returns the customers with the highest billed totals.
func (s *ReportService) TopCustomers() ([]models.TopCustomer, error) {
	return s.reports.TopCustomers()
}

// PaymentMethodBreakdown returns billing totals grouped by payment method.
func (s *ReportService) PaymentMethodBreakdown() ([]models.PaymentMethodReport, error) {
	return s.reports.PaymentMethodReports()
}

// LastThreeMonths returns the billed amount per month for the trailing three
// months.
func (s *ReportService) LastThreeMonths() ([]models.MonthlyRevenue, error) {
	return s.reports.LastThreeMonthsReports()
}

// TotalRevenue sums the final price over a billing list.
func TotalRevenue(billings []models.BillingSummary) float64 {
	var total float64
	for _, billing := range billings {
		total += billing.FinalPrice
	}
	return total
}
