package retrieval

import (
	"errors"
	"testing"
	"time"

	"mindhaven/models"

	"github.com/stretchr/testify/assert"
)

// fakeKnowledgeRepo is an in-memory stand-in for the document store,
// filtering on status the way the real repository does.
type fakeKnowledgeRepo struct {
	docs []models.KnowledgeContent
	err  error
}

func (f *fakeKnowledgeRepo) GetApproved() ([]models.KnowledgeContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	approved := make([]models.KnowledgeContent, 0, len(f.docs))
	for _, doc := range f.docs {
		if doc.Status == models.StatusApproved {
			approved = append(approved, doc)
		}
	}
	return approved, nil
}

func (f *fakeKnowledgeRepo) Create(*models.KnowledgeContent) error { return nil }
func (f *fakeKnowledgeRepo) GetByID(uint) (*models.KnowledgeContent, error) {
	return nil, nil
}
func (f *fakeKnowledgeRepo) GetAll(models.ContentStatus, string) ([]models.KnowledgeContent, error) {
	return nil, nil
}
func (f *fakeKnowledgeRepo) GetPending() ([]models.KnowledgeContent, error) { return nil, nil }
func (f *fakeKnowledgeRepo) GetByAuthorID(string) ([]models.KnowledgeContent, error) {
	return nil, nil
}
func (f *fakeKnowledgeRepo) Approve(uint, string) (*models.KnowledgeContent, error) {
	return nil, nil
}
func (f *fakeKnowledgeRepo) Reject(uint, string, string) (*models.KnowledgeContent, error) {
	return nil, nil
}
func (f *fakeKnowledgeRepo) Delete(uint) error                             { return nil }
func (f *fakeKnowledgeRepo) Import(*models.KnowledgeContent) error         { return nil }
func (f *fakeKnowledgeRepo) CountByType(models.ContentType) (int64, error) { return 0, nil }

func newTestService(repo *fakeKnowledgeRepo) *Service {
	return NewService(repo, DefaultSynonyms, DefaultWeights)
}

func TestService_FindRelevant(t *testing.T) {
	now := time.Now()
	repo := &fakeKnowledgeRepo{docs: []models.KnowledgeContent{
		{ID: 1, Title: "Understanding Anxiety", Status: models.StatusApproved, CreatedAt: now},
		{ID: 2, Title: "Mindfulness Basics", Status: models.StatusApproved, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, Title: "Child Mental Health", Status: models.StatusApproved, CreatedAt: now.Add(-2 * time.Hour)},
	}}
	service := newTestService(repo)

	t.Run("Cross-lingual query retrieves the anxiety document only", func(t *testing.T) {
		results := service.FindRelevant("cemas", 3)
		// "cemas" expands to "anxiety"; the other titles match neither
		// the token nor its expansion.
		assert.Len(t, results, 1)
		assert.Equal(t, uint(1), results[0].Document.ID)
	})

	t.Run("English query retrieves Indonesian-tagged content symmetrically", func(t *testing.T) {
		repo := &fakeKnowledgeRepo{docs: []models.KnowledgeContent{
			{ID: 7, Title: "Mengelola kecemasan harian", Status: models.StatusApproved},
		}}
		results := newTestService(repo).FindRelevant("anxiety", 3)
		assert.Len(t, results, 1)
		assert.Equal(t, uint(7), results[0].Document.ID)
	})

	t.Run("Empty query returns an empty result, not an error", func(t *testing.T) {
		assert.Empty(t, service.FindRelevant("", 3))
	})

	t.Run("Stopword-length-only query behaves like an empty query", func(t *testing.T) {
		assert.Empty(t, service.FindRelevant("a di ke", 3))
	})

	t.Run("Identical queries yield identical ordered results", func(t *testing.T) {
		first := service.FindRelevant("mental health mindfulness", 5)
		second := service.FindRelevant("mental health mindfulness", 5)
		assert.Equal(t, first, second)
	})
}

func TestService_ApprovedOnlyInvariant(t *testing.T) {
	pendingDoc := models.KnowledgeContent{
		ID:     4,
		Title:  "Understanding Anxiety Triggers",
		Status: models.StatusPending,
	}
	repo := &fakeKnowledgeRepo{docs: []models.KnowledgeContent{pendingDoc}}
	service := newTestService(repo)

	t.Run("Pending document with exact term in title is excluded", func(t *testing.T) {
		assert.Empty(t, service.Search("anxiety", 5))
	})

	t.Run("Same document becomes retrievable once approved", func(t *testing.T) {
		repo.docs[0].Status = models.StatusApproved
		results := service.Search("anxiety", 5)
		assert.Len(t, results, 1)
		assert.Equal(t, uint(4), results[0].Document.ID)
	})

	t.Run("Rejected documents never surface", func(t *testing.T) {
		repo.docs[0].Status = models.StatusRejected
		assert.Empty(t, service.Search("anxiety", 5))
	})
}

func TestService_StoreFailureDegradesToEmpty(t *testing.T) {
	repo := &fakeKnowledgeRepo{err: errors.New("database unreachable")}
	service := newTestService(repo)

	results := service.FindRelevant("anxiety", 3)
	assert.Empty(t, results)
}

func TestService_Truncation(t *testing.T) {
	docs := make([]models.KnowledgeContent, 0, 10)
	for i := uint(1); i <= 10; i++ {
		docs = append(docs, models.KnowledgeContent{
			ID:      i,
			Title:   "Stres dan pemulihan",
			Status:  models.StatusApproved,
			Content: "mengelola stres",
		})
	}
	service := newTestService(&fakeKnowledgeRepo{docs: docs})

	assert.Len(t, service.FindRelevant("stres", 3), 3)
	assert.Len(t, service.Search("stres", 5), 5)
	assert.Len(t, service.Search("stres", 0), 10)
}
