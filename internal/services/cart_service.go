package services

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"billdesk/internal/models"
	"billdesk/internal/repositories"
	"billdesk/pkg/notify"
)

// CartService owns the line items of the billing being assembled. Every
// mutation recomputes the derived totals and persists the full cart to the
// draft store; emptying the cart clears the stored draft.
type CartService struct {
	mu       sync.Mutex
	items    []models.LineItem
	drafts   repositories.DraftStore
	notifier notify.Notifier
}

// NewCartService creates a cart backed by the given draft store.
func NewCartService(drafts repositories.DraftStore, notifier notify.Notifier) *CartService {
	return &CartService{
		drafts:   drafts,
		notifier: notifier,
	}
}

// Restore rehydrates the cart from the draft store, if a draft exists.
func (s *CartService) Restore() error {
	cart, found, err := s.drafts.Load()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cart.Items
	s.recomputeTotals()
	return nil
}

// AddProduct adds a product snapshot as a new line item with quantity 1,
// most-recently-added first. Re-adding a product already in the cart and
// adding an out-of-stock product are rejected with a notice. Returns true
// when the item was added.
func (s *CartService) AddProduct(candidate models.ProductSnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == candidate.ProductID {
			s.notifier.Errorf("%s has already been added. Please increase the quantity instead.", candidate.ProductName)
			return false
		}
	}
	if candidate.AvailableQty == 0 {
		s.notifier.Errorf("%s is out of stock", candidate.ProductName)
		return false
	}

	item := models.LineItem{
		ProductID:    candidate.ProductID,
		ProductName:  candidate.ProductName,
		UnitPrice:    candidate.UnitPrice,
		AvailableQty: candidate.AvailableQty,
		Quantity:     1,
		LineTotal:    candidate.UnitPrice,
	}
	s.items = append([]models.LineItem{item}, s.items...)
	s.recomputeTotals()
	s.persist()
	return true
}

// SetQuantity sets the quantity of a line item. A request above the stock
// snapshot is rejected with a notice and leaves the stored quantity
// unchanged; otherwise the value is clamped to zero or above and the totals
// recomputed. Returns true when the quantity was changed.
func (s *CartService) SetQuantity(productID string, requested int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ProductID != productID {
			continue
		}
		if requested > item.AvailableQty {
			s.notifier.Errorf("Quantity cannot exceed current quantity (%d)", item.AvailableQty)
			return false
		}
		if requested < 0 {
			requested = 0
		}
		s.items[i].Quantity = requested
		s.items[i].LineTotal = float64(requested) * item.UnitPrice
		s.recomputeTotals()
		s.persist()
		return true
	}
	return false
}

// RemoveProduct removes the matching line item unconditionally.
func (s *CartService) RemoveProduct(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.recomputeTotals()
	s.persist()
}

// Reset empties the cart and clears the stored draft.
func (s *CartService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a copy of the current line items.
func (s *CartService) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LineItem(nil), s.items...)
}

// GrandTotal returns the sum of all line totals.
func (s *CartService) GrandTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grandTotal()
}

// TotalItems returns the number of distinct products in the cart.
func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// HasZeroQuantity reports whether any line item has quantity zero. Such
// entries stay in the cart but block checkout.
func (s *CartService) HasZeroQuantity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.Quantity == 0 {
			return true
		}
	}
	return false
}

// Snapshot returns the cart in its persisted form.
func (s *CartService) Snapshot() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// recomputeTotals refreshes every derived line total. Callers must hold mu.
func (s *CartService) recomputeTotals() {
	for i, item := range s.items {
		s.items[i].LineTotal = float64(item.Quantity) * item.UnitPrice
	}
}

func (s *CartService) grandTotal() float64 {
	var total float64
	for _, item := range s.items {
		total += item.LineTotal
	}
	return total
}

func (s *CartService) snapshot() *models.Cart {
	return &models.Cart{
		Items:      append([]models.LineItem(nil), s.items...),
		GrandTotal: s.grandTotal(),
	}
}

// persist writes the cart to the draft store, or clears the draft when the
// cart is empty. A storage failure never fails the mutation. Callers must
// hold mu.
func (s *CartService) persist() {
	var err error
	if len(s.items) == 0 {
		err = s.drafts.Clear()
	} else {
		err = s.drafts.Save(s.snapshot())
	}
	if err != nil {
		log.Printf("Warning: failed to persist cart draft: %v", err)
	}
}

// ParseQuantity normalizes raw quantity input. Empty or non-numeric input
// becomes zero.
func ParseQuantity(raw string) int {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return quantity
}
