package models

import "time"

// Payment status tags as recorded by the backend.
const (
	PaymentStatusSuccess = "Success"
	PaymentStatusPending = "Pending"
	PaymentStatusFailed  = "Failed"
)

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"UPI", "Credit Card", "Debit Card", "Cash", "Others"}

// PaymentStatusID maps a payment status tag to its backend numeric id.
func PaymentStatusID(status string) int {
	switch status {
	case PaymentStatusSuccess:
		return 1
	case PaymentStatusPending:
		return 0
	default:
		return 2
	}
}

// LineItem is one product entry in an in-progress bill. UnitPrice and
// AvailableQty are the snapshot captured when the product was added;
// LineTotal is always Quantity * UnitPrice.
type LineItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	UnitPrice    float64 `json:"productPrice"`
	AvailableQty int     `json:"productRemainingQty"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"totalPrice"`
}

// Cart is the ordered collection of line items being assembled before
// checkout, most-recently-added first. GrandTotal is derived from the items.
type Cart struct {
	Items      []LineItem `json:"items"`
	GrandTotal float64    `json:"grandTotal"`
}

// CustomerDetails carries the customer contact fields collected at checkout.
type CustomerDetails struct {
	CustomerName   string `json:"customerName" validate:"required"`
	CustomerMobile string `json:"customerMobile" validate:"required,phone"`
	CustomerEmail  string `json:"customerEmail" validate:"required,email"`
	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=UPI 'Credit Card' 'Debit Card' Cash Others"`
}

// Order is the finalized submission payload for a new billing. It is built
// from a cart plus customer details and never mutated after construction.
type Order struct {
	CustomerDetails
	ReferenceID     string     `json:"referenceId"`
	ProductsList    []LineItem `json:"productsList"`
	TotalItems      int        `json:"totalItems"`
	FinalPrice      float64    `json:"finalPrice"`
	PaymentStatus   string     `json:"paymentStatus"`
	PaymentStatusID int        `json:"paymentStatusId"`
	CreatedAt       time.Time  `json:"createdAt"`
	CreatedBy       string     `json:"createdBy"`
}

// BillingReceipt is the backend's answer to a billing submission.
type BillingReceipt struct {
	BillingID     string `json:"billingId"`
	PaymentStatus string `json:"paymentStatus"`
}

// BillingSummary is one row of the billing list and report views.
type BillingSummary struct {
	BillingID     string    `json:"billingId"`
	CustomerName  string    `json:"customerName"`
	TotalItems    int       `json:"totalItems"`
	FinalPrice    float64   `json:"finalPrice"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
