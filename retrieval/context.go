package retrieval

import (
	"fmt"
	"strings"

	"mindhaven/models"
)

// Assembler formats ranked documents into a single prose block for
// prompt injection. Output favors readability for the downstream
// text-completion service over machine parseability.
type Assembler struct {
	excerptBudget int
}

// NewAssembler creates an Assembler with the given per-document content
// excerpt budget in characters.
func NewAssembler(excerptBudget int) *Assembler {
	return &Assembler{excerptBudget: excerptBudget}
}

// Build emits one labeled section per document, in ranked order, each
// carrying a source index, title, summary and a bounded content
// excerpt. An empty input produces an empty string; the system-prompt
// template is responsible for graceful no-context behavior.
func (a *Assembler) Build(docs []ScoredDocument) string {
	if len(docs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, sd := range docs {
		doc := sd.Document
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "--- Sumber [%d]: %s ---\n", i+1, doc.Title)
		if doc.Summary != "" {
			fmt.Fprintf(&b, "Ringkasan: %s\n", doc.Summary)
		}
		b.WriteString(truncate(doc.Content, a.excerptBudget))
		b.WriteString("\n")
	}
	return b.String()
}

// Citations derives the lightweight source list shown in the UI next to
// a generated reply.
func Citations(docs []ScoredDocument) []models.SourceCitation {
	citations := make([]models.SourceCitation, 0, len(docs))
	for _, sd := range docs {
		citations = append(citations, models.SourceCitation{
			Title: sd.Document.Title,
			Type:  string(sd.Document.Type),
		})
	}
	return citations
}

func truncate(s string, budget int) string {
	if budget <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + "..."
}
