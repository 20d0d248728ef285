package models

// Product represents a catalog product as served by the backend.
type Product struct {
	ID           string  `json:"productId" validate:"omitempty"`
	Name         string  `json:"productName" validate:"required,min=3,max=100"`
	Category     string  `json:"productCategory" validate:"omitempty,max=100"`
	Description  string  `json:"productDescription" validate:"omitempty,max=500"`
	Price        float64 `json:"productPrice" validate:"required,gt=0"`
	RemainingQty int     `json:"productRemainingQty" validate:"gte=0"`
}

// ProductSnapshot is the slice of a product returned by the billing search
// endpoint: enough to add it to a cart, with stock and price frozen at the
// time of the search.
type ProductSnapshot struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	UnitPrice    float64 `json:"productPrice"`
	AvailableQty int     `json:"productRemainingQty"`
}
