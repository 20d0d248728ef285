package services

import (
	"strings"
	"sync"
	"time"

	"billdesk/internal/api"
	"billdesk/internal/models"
	"billdesk/pkg/notify"
)

// SearchService bridges free-text input to the product search endpoint.
// A query only reaches the backend after it has been stable for the debounce
// interval; a newer edit supersedes a pending or in-flight search, so only
// the latest query's results are ever delivered.
type SearchService struct {
	billing   api.BillingAPI
	notifier  notify.Notifier
	debounce  time.Duration
	onResults func([]models.ProductSnapshot)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	query   string
	results []models.ProductSnapshot
	pending *models.ProductSnapshot
}

// NewSearchService creates a debounced product search. onResults is invoked
// with the result list whenever it changes; it may be nil.
func NewSearchService(billing api.BillingAPI, notifier notify.Notifier, debounce time.Duration, onResults func([]models.ProductSnapshot)) *SearchService {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &SearchService{
		billing:   billing,
		notifier:  notifier,
		debounce:  debounce,
		onResults: onResults,
	}
}

// SetQuery records a query edit. An empty query clears results and the
// pending candidate immediately without a network call; otherwise a search is
// scheduled after the debounce interval, superseding any pending one.
func (s *SearchService) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.pending = nil
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(query) == "" {
		s.results = nil
		callback := s.onResults
		s.mu.Unlock()
		if callback != nil {
			callback(nil)
		}
		return
	}

	generation := s.gen
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(generation, query)
	})
	s.mu.Unlock()
}

// run executes the search scheduled for generation and publishes its results
// unless a newer query superseded it in the meantime.
func (s *SearchService) run(generation uint64, query string) {
	results, err := s.billing.SearchProducts(query)

	s.mu.Lock()
	if generation != s.gen {
		s.mu.Unlock()
		return
	}
	if err != nil {
		// Prior results stay visible on a failed search.
		s.mu.Unlock()
		s.notifier.Errorf("%v", err)
		return
	}
	s.results = results
	callback := s.onResults
	s.mu.Unlock()

	if callback != nil {
		callback(results)
	}
}

// Select fixes a search result as the pending candidate for AddPendingTo and
// collapses the result list.
func (s *SearchService) Select(product models.ProductSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = product.ProductName
	s.results = nil
	s.pending = &product
}

// Pending returns the currently selected candidate, if any.
func (s *SearchService) Pending() (models.ProductSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return models.ProductSnapshot{}, false
	}
	return *s.pending, true
}

// Results returns a copy of the latest delivered result list.
func (s *SearchService) Results() []models.ProductSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ProductSnapshot(nil), s.results...)
}

// Query returns the current query text.
func (s *SearchService) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Clear resets the query, results and pending candidate, cancelling any
// scheduled search.
func (s *SearchService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.query = ""
	s.results = nil
	s.pending = nil
}

// AddPendingTo hands the pending candidate to the cart. The selection is
// cleared only when the add succeeds, so a rejected add leaves the candidate
// in place for correction.
func (s *SearchService) AddPendingTo(cart *CartService) bool {
	candidate, ok := s.Pending()
	if !ok {
		return false
	}
	if !cart.AddProduct(candidate) {
		return false
	}
	s.Clear()
	return true
}
