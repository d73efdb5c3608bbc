package services

import (
	"errors"
	"fmt"

	"mindhaven/models"
	"mindhaven/repository"
	"mindhaven/retrieval"
)

// Searcher is the retrieval façade entry point used by knowledge base
// search. Satisfied by *retrieval.Service.
type Searcher interface {
	Search(query string, limit int) []retrieval.ScoredDocument
}

// SubmitContentInput carries a contributor submission.
type SubmitContentInput struct {
	Title      string
	Summary    string
	Content    string
	Type       models.ContentType
	Category   string
	AuthorID   string
	AuthorName string
}

// KnowledgeService orchestrates the contribution/approval workflow and
// knowledge base search.
type KnowledgeService interface {
	Submit(input SubmitContentInput) (*models.KnowledgeContent, error)
	Search(query, category string, limit int) []retrieval.ScoredDocument
	List(status models.ContentStatus, category string) ([]models.KnowledgeContent, error)
	ListPending() ([]models.KnowledgeContent, error)
	ListByAuthor(authorID string) ([]models.KnowledgeContent, error)
	Approve(id uint, reviewerID string) (*models.KnowledgeContent, error)
	Reject(id uint, reviewerID string, feedback string) (*models.KnowledgeContent, error)
	Delete(id uint) error
}

type knowledgeService struct {
	repo     repository.KnowledgeRepository
	searcher Searcher
}

// NewKnowledgeService creates the knowledge service.
func NewKnowledgeService(repo repository.KnowledgeRepository, searcher Searcher) KnowledgeService {
	return &knowledgeService{repo: repo, searcher: searcher}
}

// Submit stores a contributor submission, entering the approval
// workflow as pending.
func (s *knowledgeService) Submit(input SubmitContentInput) (*models.KnowledgeContent, error) {
	if input.Title == "" || input.Content == "" || input.AuthorID == "" {
		return nil, errors.New("title, content and author are required")
	}
	category := input.Category
	if category == "" || !models.IsValidCategory(category) {
		category = "general"
	}
	contentType := input.Type
	if contentType == "" {
		contentType = models.ContentTypeArticle
	}
	summary := input.Summary
	if summary == "" {
		summary = input.Title
	}

	content := &models.KnowledgeContent{
		Title:      input.Title,
		Summary:    summary,
		Content:    input.Content,
		Type:       contentType,
		Category:   category,
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
	}
	if err := s.repo.Create(content); err != nil {
		return nil, fmt.Errorf("failed to submit content: %w", err)
	}
	return content, nil
}

// Search ranks approved documents against the query. The optional
// category filter is applied after scoring, then the result is
// truncated to limit.
func (s *knowledgeService) Search(query, category string, limit int) []retrieval.ScoredDocument {
	scored := s.searcher.Search(query, 0)
	if category != "" && category != "all" {
		filtered := scored[:0]
		for _, sd := range scored {
			if sd.Document.Category == category {
				filtered = append(filtered, sd)
			}
		}
		scored = filtered
	}
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// List returns documents filtered by status and/or category, newest
// first.
func (s *knowledgeService) List(status models.ContentStatus, category string) ([]models.KnowledgeContent, error) {
	return s.repo.GetAll(status, category)
}

// ListPending returns the review queue, newest first.
func (s *knowledgeService) ListPending() ([]models.KnowledgeContent, error) {
	return s.repo.GetPending()
}

// ListByAuthor returns one contributor's submissions across statuses.
func (s *knowledgeService) ListByAuthor(authorID string) ([]models.KnowledgeContent, error) {
	return s.repo.GetByAuthorID(authorID)
}

// Approve makes a pending document visible to retrieval.
func (s *knowledgeService) Approve(id uint, reviewerID string) (*models.KnowledgeContent, error) {
	return s.repo.Approve(id, reviewerID)
}

// Reject closes a pending document with reviewer feedback.
func (s *knowledgeService) Reject(id uint, reviewerID string, feedback string) (*models.KnowledgeContent, error) {
	return s.repo.Reject(id, reviewerID, feedback)
}

// Delete is the explicit administrative removal operation.
func (s *knowledgeService) Delete(id uint) error {
	return s.repo.Delete(id)
}
