package retrieval

import (
	"log"

	"mindhaven/repository"
)

// Service is the retrieval façade shared by the knowledge base search
// UI and the chat context builder. Both entry points see only approved
// documents, and a document store failure degrades to an empty result
// set so callers keep functioning without retrieved context.
type Service struct {
	repo      repository.KnowledgeRepository
	extractor *Extractor
	weights   Weights
}

// NewService creates the retrieval façade over the given document store.
func NewService(repo repository.KnowledgeRepository, synonyms SynonymTable, weights Weights) *Service {
	return &Service{
		repo:      repo,
		extractor: NewExtractor(synonyms),
		weights:   weights,
	}
}

// Search ranks all approved documents against the query for the
// knowledge base UI. A limit <= 0 returns all matches.
func (s *Service) Search(query string, limit int) []ScoredDocument {
	return s.retrieve(query, limit)
}

// FindRelevant selects the chat context documents for a user message.
func (s *Service) FindRelevant(query string, limit int) []ScoredDocument {
	return s.retrieve(query, limit)
}

func (s *Service) retrieve(query string, limit int) []ScoredDocument {
	terms := s.extractor.Extract(query)
	if len(terms) == 0 {
		return nil
	}

	docs, err := s.repo.GetApproved()
	if err != nil {
		log.Printf("WARN: [Retrieval] Document store fetch failed, returning empty result set: %v", err)
		return nil
	}

	return Rank(docs, terms, s.weights, limit)
}
