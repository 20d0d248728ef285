package models

// TopCustomer is one row of the top-customer report.
type TopCustomer struct {
	CustomerName string  `json:"customerName"`
	BillingCount int     `json:"billingCount"`
	TotalSpent   float64 `json:"totalSpent"`
}

// PaymentMethodReport aggregates billings by payment method.
type PaymentMethodReport struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// MonthlyRevenue is one month's billed amount in the trailing-months report.
type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}
