package repositories

import (
	"sync"

	"billdesk/internal/models"
)

// MockDraftStore is an in-memory implementation of DraftStore.
type MockDraftStore struct {
	mu    sync.RWMutex
	cart  *models.Cart
	saves int
}

// NewMockDraftStore creates a new instance of MockDraftStore.
func NewMockDraftStore() *MockDraftStore {
	return &MockDraftStore{}
}

// Load returns the stored draft cart, if one exists.
func (s *MockDraftStore) Load() (*models.Cart, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cart == nil {
		return nil, false, nil
	}
	cart := *s.cart
	cart.Items = append([]models.LineItem(nil), s.cart.Items...)
	return &cart, true, nil
}

// Save replaces the stored draft with a copy of cart.
func (s *MockDraftStore) Save(cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *cart
	stored.Items = append([]models.LineItem(nil), cart.Items...)
	s.cart = &stored
	s.saves++
	return nil
}

// Clear removes the stored draft.
func (s *MockDraftStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	return nil
}

// SaveCount reports how many times Save has been called.
func (s *MockDraftStore) SaveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
