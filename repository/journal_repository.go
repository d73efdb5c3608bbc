package repository

import (
	"errors"
	"fmt"
	"log"

	"mindhaven/models"

	"gorm.io/gorm"
)

// JournalRepository defines the interface for personal journal entries.
type JournalRepository interface {
	Create(entry *models.JournalEntry) error
	GetByUserID(userID string) ([]models.JournalEntry, error)
	Delete(id uint, userID string) error
}

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new instance of JournalRepository.
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(entry *models.JournalEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	if entry.UserID == "" {
		return errors.New("entry must belong to a user")
	}
	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("ERROR: [JournalRepository] Failed to create entry for user '%s': %v", entry.UserID, err)
		return fmt.Errorf("failed to create journal entry: %w", err)
	}
	return nil
}

// GetByUserID returns the user's entries, newest first.
func (r *journalRepository) GetByUserID(userID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&entries).Error
	if err != nil {
		log.Printf("ERROR: [JournalRepository] Failed to retrieve entries for user '%s': %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}
	return entries, nil
}

// Delete removes an entry, scoped to its owner so one user cannot
// delete another's entries.
func (r *journalRepository) Delete(id uint, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.JournalEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete journal entry ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("journal entry ID %d not found for user", id)
	}
	return nil
}
