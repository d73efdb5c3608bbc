package repository

import (
	"errors"
	"fmt"
	"log"
	"time"

	"mindhaven/models"

	"gorm.io/gorm"
)

// KnowledgeRepository defines the interface for interacting with
// knowledge base documents. Approve and Reject are the only code paths
// that populate the review audit fields, and both only move documents
// out of the pending status (transitions are one-way).
type KnowledgeRepository interface {
	Create(content *models.KnowledgeContent) error
	GetByID(id uint) (*models.KnowledgeContent, error)
	GetAll(status models.ContentStatus, category string) ([]models.KnowledgeContent, error)
	GetApproved() ([]models.KnowledgeContent, error)
	GetPending() ([]models.KnowledgeContent, error)
	GetByAuthorID(authorID string) ([]models.KnowledgeContent, error)
	Approve(id uint, reviewerID string) (*models.KnowledgeContent, error)
	Reject(id uint, reviewerID string, feedback string) (*models.KnowledgeContent, error)
	Delete(id uint) error
	Import(content *models.KnowledgeContent) error
	CountByType(contentType models.ContentType) (int64, error)
}

type knowledgeRepository struct {
	db *gorm.DB
}

// NewKnowledgeRepository creates a new instance of KnowledgeRepository.
func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

// Create stores a new document. Submissions always enter the approval
// workflow as pending, regardless of what the caller set.
func (r *knowledgeRepository) Create(content *models.KnowledgeContent) error {
	if content == nil {
		return errors.New("content cannot be nil")
	}
	content.Status = models.StatusPending
	content.ReviewedAt = nil
	content.ReviewedBy = nil
	content.Feedback = nil
	if err := r.db.Create(content).Error; err != nil {
		log.Printf("ERROR: [KnowledgeRepository] Failed to create document '%s': %v", content.Title, err)
		return fmt.Errorf("failed to create document '%s': %w", content.Title, err)
	}
	log.Printf("INFO: [KnowledgeRepository] Created document ID %d ('%s') with status pending.", content.ID, content.Title)
	return nil
}

// GetByID retrieves a single document by its ID. Returns (nil, nil) when
// no document exists.
func (r *knowledgeRepository) GetByID(id uint) (*models.KnowledgeContent, error) {
	var content models.KnowledgeContent
	err := r.db.First(&content, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [KnowledgeRepository] Failed to retrieve document ID %d: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve document ID %d: %w", id, err)
	}
	return &content, nil
}

// GetAll retrieves documents ordered by creation time descending,
// optionally filtered by status and/or category.
func (r *knowledgeRepository) GetAll(status models.ContentStatus, category string) ([]models.KnowledgeContent, error) {
	var contents []models.KnowledgeContent
	query := r.db.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&contents).Error; err != nil {
		log.Printf("ERROR: [KnowledgeRepository] Failed to retrieve documents (status='%s', category='%s'): %v", status, category, err)
		return nil, fmt.Errorf("failed to retrieve documents: %w", err)
	}
	return contents, nil
}

// GetApproved retrieves every approved document, newest first. This is
// the only view the retrieval subsystem ever sees.
func (r *knowledgeRepository) GetApproved() ([]models.KnowledgeContent, error) {
	return r.GetAll(models.StatusApproved, "")
}

// GetPending retrieves documents awaiting review, newest first.
func (r *knowledgeRepository) GetPending() ([]models.KnowledgeContent, error) {
	return r.GetAll(models.StatusPending, "")
}

// GetByAuthorID retrieves all documents submitted by one contributor.
func (r *knowledgeRepository) GetByAuthorID(authorID string) ([]models.KnowledgeContent, error) {
	var contents []models.KnowledgeContent
	err := r.db.Where("author_id = ?", authorID).Order("created_at desc").Find(&contents).Error
	if err != nil {
		log.Printf("ERROR: [KnowledgeRepository] Failed to retrieve documents for author '%s': %v", authorID, err)
		return nil, fmt.Errorf("failed to retrieve documents for author '%s': %w", authorID, err)
	}
	return contents, nil
}

// Approve transitions a pending document to approved and stamps the
// review audit fields. Documents not in pending are left untouched.
func (r *knowledgeRepository) Approve(id uint, reviewerID string) (*models.KnowledgeContent, error) {
	return r.review(id, reviewerID, models.StatusApproved, "")
}

// Reject transitions a pending document to rejected, recording the
// reviewer's feedback for the contributor.
func (r *knowledgeRepository) Reject(id uint, reviewerID string, feedback string) (*models.KnowledgeContent, error) {
	return r.review(id, reviewerID, models.StatusRejected, feedback)
}

func (r *knowledgeRepository) review(id uint, reviewerID string, status models.ContentStatus, feedback string) (*models.KnowledgeContent, error) {
	content, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, fmt.Errorf("document ID %d not found", id)
	}
	if content.Status != models.StatusPending {
		return nil, fmt.Errorf("document ID %d is already %s and cannot be re-reviewed", id, content.Status)
	}

	now := time.Now()
	content.Status = status
	content.ReviewedAt = &now
	content.ReviewedBy = &reviewerID
	if status == models.StatusRejected && feedback != "" {
		content.Feedback = &feedback
	}

	if err := r.db.Save(content).Error; err != nil {
		log.Printf("ERROR: [KnowledgeRepository] Failed to mark document ID %d as %s: %v", id, status, err)
		return nil, fmt.Errorf("failed to mark document ID %d as %s: %w", id, status, err)
	}
	log.Printf("INFO: [KnowledgeRepository] Document ID %d marked %s by reviewer '%s'.", id, status, reviewerID)
	return content, nil
}

// Import stores a document that bypasses the approval workflow, used
// only for system-imported research journals that arrive pre-approved.
func (r *knowledgeRepository) Import(content *models.KnowledgeContent) error {
	if content == nil {
		return errors.New("content cannot be nil")
	}
	content.Status = models.StatusApproved
	if err := r.db.Create(content).Error; err != nil {
		log.Printf("ERROR: [KnowledgeRepository] Failed to import document '%s': %v", content.Title, err)
		return fmt.Errorf("failed to import document '%s': %w", content.Title, err)
	}
	return nil
}

// CountByType reports how many documents of one content type exist.
func (r *knowledgeRepository) CountByType(contentType models.ContentType) (int64, error) {
	var count int64
	err := r.db.Model(&models.KnowledgeContent{}).Where("type = ?", contentType).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count documents of type '%s': %w", contentType, err)
	}
	return count, nil
}

// Delete permanently removes a document. Only the explicit
// administrative delete operation reaches this.
func (r *knowledgeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.KnowledgeContent{}, id)
	if result.Error != nil {
		log.Printf("ERROR: [KnowledgeRepository] Failed to delete document ID %d: %v", id, result.Error)
		return fmt.Errorf("failed to delete document ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("document ID %d not found", id)
	}
	log.Printf("INFO: [KnowledgeRepository] Deleted document ID %d.", id)
	return nil
}
