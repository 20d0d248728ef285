package repositories

import (
	"billdesk/internal/models"
)

// DraftStore defines the persistence port for the in-progress checkout cart.
// The cart builder is the only writer; the store is read once at flow entry.
type DraftStore interface {
	// Load returns the persisted draft cart, if one exists.
	Load() (*models.Cart, bool, error)
	// Save replaces the persisted draft with cart.
	Save(cart *models.Cart) error
	// Clear removes the persisted draft entirely.
	Clear() error
}
