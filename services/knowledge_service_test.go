package services

import (
	"errors"
	"testing"

	"mindhaven/models"
	"mindhaven/retrieval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockKnowledgeRepository is a mock type for the KnowledgeRepository interface.
type MockKnowledgeRepository struct {
	mock.Mock
}

func (m *MockKnowledgeRepository) Create(content *models.KnowledgeContent) error {
	args := m.Called(content)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) GetByID(id uint) (*models.KnowledgeContent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KnowledgeContent), args.Error(1)
}

func (m *MockKnowledgeRepository) GetAll(status models.ContentStatus, category string) ([]models.KnowledgeContent, error) {
	args := m.Called(status, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KnowledgeContent), args.Error(1)
}

func (m *MockKnowledgeRepository) GetApproved() ([]models.KnowledgeContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KnowledgeContent), args.Error(1)
}

func (m *MockKnowledgeRepository) GetPending() ([]models.KnowledgeContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KnowledgeContent), args.Error(1)
}

func (m *MockKnowledgeRepository) GetByAuthorID(authorID string) ([]models.KnowledgeContent, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KnowledgeContent), args.Error(1)
}

func (m *MockKnowledgeRepository) Approve(id uint, reviewerID string) (*models.KnowledgeContent, error) {
	args := m.Called(id, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KnowledgeContent), args.Error(1)
}

func (m *MockKnowledgeRepository) Reject(id uint, reviewerID string, feedback string) (*models.KnowledgeContent, error) {
	args := m.Called(id, reviewerID, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KnowledgeContent), args.Error(1)
}

func (m *MockKnowledgeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) Import(content *models.KnowledgeContent) error {
	args := m.Called(content)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) CountByType(contentType models.ContentType) (int64, error) {
	args := m.Called(contentType)
	return args.Get(0).(int64), args.Error(1)
}

// stubSearcher returns a fixed ranked list regardless of query.
type stubSearcher struct {
	docs []retrieval.ScoredDocument
}

func (s *stubSearcher) Search(query string, limit int) []retrieval.ScoredDocument {
	if limit > 0 && len(s.docs) > limit {
		return s.docs[:limit]
	}
	return s.docs
}

func TestKnowledgeService_Submit(t *testing.T) {
	t.Run("Valid submission is created with sensible defaults", func(t *testing.T) {
		mockRepo := new(MockKnowledgeRepository)
		service := NewKnowledgeService(mockRepo, &stubSearcher{})

		mockRepo.On("Create", mock.MatchedBy(func(c *models.KnowledgeContent) bool {
			return c.Title == "Judul" &&
				c.Summary == "Judul" && // summary falls back to title
				c.Category == "general" && // invalid category falls back
				c.Type == models.ContentTypeArticle
		})).Return(nil).Once()

		content, err := service.Submit(SubmitContentInput{
			Title:    "Judul",
			Content:  "Isi artikel",
			Category: "not-a-category",
			AuthorID: "author-1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing required fields are rejected before the store is touched", func(t *testing.T) {
		mockRepo := new(MockKnowledgeRepository)
		service := NewKnowledgeService(mockRepo, &stubSearcher{})

		_, err := service.Submit(SubmitContentInput{Title: "Judul"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestKnowledgeService_Search(t *testing.T) {
	ranked := []retrieval.ScoredDocument{
		{Document: models.KnowledgeContent{ID: 1, Category: "anxiety"}, Score: 9},
		{Document: models.KnowledgeContent{ID: 2, Category: "mindfulness"}, Score: 6},
		{Document: models.KnowledgeContent{ID: 3, Category: "anxiety"}, Score: 2},
	}

	t.Run("Category filter applies after scoring, preserving rank order", func(t *testing.T) {
		service := NewKnowledgeService(new(MockKnowledgeRepository), &stubSearcher{docs: ranked})

		results := service.Search("cemas", "anxiety", 0)
		assert.Len(t, results, 2)
		assert.Equal(t, uint(1), results[0].Document.ID)
		assert.Equal(t, uint(3), results[1].Document.ID)
	})

	t.Run("Limit truncates after the category filter", func(t *testing.T) {
		service := NewKnowledgeService(new(MockKnowledgeRepository), &stubSearcher{docs: ranked})

		results := service.Search("cemas", "anxiety", 1)
		assert.Len(t, results, 1)
		assert.Equal(t, uint(1), results[0].Document.ID)
	})

	t.Run("No category filter returns the full ranking", func(t *testing.T) {
		service := NewKnowledgeService(new(MockKnowledgeRepository), &stubSearcher{docs: ranked})

		results := service.Search("cemas", "", 0)
		assert.Len(t, results, 3)
	})
}

func TestKnowledgeService_ReviewDelegation(t *testing.T) {
	t.Run("Approve delegates to the repository", func(t *testing.T) {
		mockRepo := new(MockKnowledgeRepository)
		service := NewKnowledgeService(mockRepo, &stubSearcher{})

		approved := &models.KnowledgeContent{ID: 5, Status: models.StatusApproved}
		mockRepo.On("Approve", uint(5), "admin-1").Return(approved, nil).Once()

		content, err := service.Approve(5, "admin-1")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusApproved, content.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Reject passes the feedback through", func(t *testing.T) {
		mockRepo := new(MockKnowledgeRepository)
		service := NewKnowledgeService(mockRepo, &stubSearcher{})

		rejected := &models.KnowledgeContent{ID: 6, Status: models.StatusRejected}
		mockRepo.On("Reject", uint(6), "admin-1", "perlu sumber").Return(rejected, nil).Once()

		content, err := service.Reject(6, "admin-1", "perlu sumber")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusRejected, content.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ListPending returns the review queue", func(t *testing.T) {
		mockRepo := new(MockKnowledgeRepository)
		service := NewKnowledgeService(mockRepo, &stubSearcher{})

		queue := []models.KnowledgeContent{
			{ID: 7, Status: models.StatusPending},
			{ID: 8, Status: models.StatusPending},
		}
		mockRepo.On("GetPending").Return(queue, nil).Once()

		contents, err := service.ListPending()
		assert.NoError(t, err)
		assert.Len(t, contents, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository errors propagate", func(t *testing.T) {
		mockRepo := new(MockKnowledgeRepository)
		service := NewKnowledgeService(mockRepo, &stubSearcher{})

		mockRepo.On("Approve", uint(9), "admin-1").Return(nil, errors.New("already rejected")).Once()

		_, err := service.Approve(9, "admin-1")
		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}
