package retrieval

import (
	"sort"
	"strings"

	"mindhaven/models"
)

// Weights parameterizes the relevance scorer. Every matching term earns
// Base; a match inside the title or summary earns the respective bonus
// on top. One Weights value is shared by both retrieval entry points so
// search and chat context rank documents identically.
type Weights struct {
	Base    int
	Title   int
	Summary int
}

// DefaultWeights is the canonical weighting scheme (base 1, title 3,
// summary 2).
var DefaultWeights = Weights{Base: 1, Title: 3, Summary: 2}

// ScoredDocument pairs a document with its relevance score for one
// query. It is transient and discarded after the response.
type ScoredDocument struct {
	Document models.KnowledgeContent
	Score    int
}

// Score computes the non-negative relevance score between a term set
// and one document. The searchable text is title, summary, content and
// category concatenated in that order, lowercased; every term found as
// a substring contributes per the weights.
func Score(doc models.KnowledgeContent, terms map[string]struct{}, w Weights) int {
	searchText := strings.ToLower(doc.Title + " " + doc.Summary + " " + doc.Content + " " + doc.Category)
	title := strings.ToLower(doc.Title)
	summary := strings.ToLower(doc.Summary)

	score := 0
	for term := range terms {
		if !strings.Contains(searchText, term) {
			continue
		}
		score += w.Base
		if strings.Contains(title, term) {
			score += w.Title
		}
		if strings.Contains(summary, term) {
			score += w.Summary
		}
	}
	return score
}

// Rank scores a collection, drops zero-score documents, sorts descending
// by score and truncates to limit (limit <= 0 means no truncation). The
// sort is stable: ties keep the incoming collection order, which the
// repository supplies as creation time descending.
func Rank(docs []models.KnowledgeContent, terms map[string]struct{}, w Weights, limit int) []ScoredDocument {
	if len(terms) == 0 {
		return nil
	}

	scored := make([]ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		if s := Score(doc, terms, w); s > 0 {
			scored = append(scored, ScoredDocument{Document: doc, Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
