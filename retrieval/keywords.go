package retrieval

import "strings"

// Extractor turns a raw query string into a normalized, synonym-expanded
// term set. The synonym table is injected so it can grow independently
// of the extraction logic.
type Extractor struct {
	synonyms SynonymTable
}

// NewExtractor creates an Extractor over the given synonym table.
func NewExtractor(synonyms SynonymTable) *Extractor {
	return &Extractor{synonyms: synonyms}
}

// Extract normalizes the query to lowercase, splits on whitespace, and
// discards tokens of length <= 2 (noise filtering for short words and
// stopwords). Each surviving token is tested against the synonym table:
// a token matches an entry when it contains the canonical key or one of
// the listed values, and a match adds the key plus all values to the
// set. The result is the deduplicated union of original tokens and
// expansions; an empty or stopword-only query yields an empty set.
func (e *Extractor) Extract(query string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if len(token) <= 2 {
			continue
		}
		terms[token] = struct{}{}
		for key, values := range e.synonyms {
			if !tokenMatches(token, key, values) {
				continue
			}
			terms[key] = struct{}{}
			for _, v := range values {
				terms[v] = struct{}{}
			}
		}
	}
	return terms
}

func tokenMatches(token, key string, values []string) bool {
	if strings.Contains(token, key) {
		return true
	}
	for _, v := range values {
		if strings.Contains(token, v) {
			return true
		}
	}
	return false
}
