package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"billdesk/internal/models"
)

// draftKey scopes the stored draft to the checkout flow.
const draftKey = "checkout"

// draftRecord is the storage row for a persisted cart draft.
type draftRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(36)"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// GORMDraftStore is a DraftStore backed by a local database, so an
// in-progress cart survives process restarts.
type GORMDraftStore struct {
	db *gorm.DB
}

// NewGORMDraftStore creates a DraftStore on db and migrates its table.
func NewGORMDraftStore(db *gorm.DB) (*GORMDraftStore, error) {
	if err := db.AutoMigrate(&draftRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate draft store: %w", err)
	}
	return &GORMDraftStore{db: db}, nil
}

// Load returns the persisted draft cart, if one exists.
func (s *GORMDraftStore) Load() (*models.Cart, bool, error) {
	var record draftRecord
	err := s.db.First(&record, "key = ?", draftKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load draft: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(record.Payload), &cart); err != nil {
		return nil, false, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &cart, true, nil
}

// Save replaces the persisted draft with cart.
func (s *GORMDraftStore) Save(cart *models.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	record := draftRecord{Key: draftKey, Payload: string(payload)}
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Clear removes the persisted draft entirely.
func (s *GORMDraftStore) Clear() error {
	if err := s.db.Delete(&draftRecord{}, "key = ?", draftKey).Error; err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
