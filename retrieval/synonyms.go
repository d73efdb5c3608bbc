package retrieval

// SynonymTable maps a canonical domain term to its related terms. The
// domain vocabulary spans Indonesian and English with many near-synonyms
// for the core concepts, so plain substring matching without expansion
// misses cross-lingual and colloquial phrasings.
type SynonymTable map[string][]string

// DefaultSynonyms is the fixed bilingual table for the mental-health
// domain. Extend the table here; scoring logic never needs to change.
var DefaultSynonyms = SynonymTable{
	"cemas":       {"anxiety", "kecemasan", "anxious", "worry", "khawatir"},
	"sedih":       {"depression", "depresi", "sad", "murung", "down"},
	"stres":       {"stress", "tekanan", "overwhelmed", "tertekan"},
	"mindfulness": {"meditasi", "meditation", "relaksasi", "calm", "tenang"},
	"depresi":     {"depression", "sedih", "hopeless", "putus asa"},
	"mental":      {"kesehatan mental", "mental health", "psikis", "jiwa"},
	"anak":        {"child", "remaja", "youth", "generasi z"},
	"sosial":      {"social", "hubungan", "relationship", "komunitas"},
}
