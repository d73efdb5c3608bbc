package retrieval

import (
	"strings"
	"testing"

	"mindhaven/models"

	"github.com/stretchr/testify/assert"
)

func TestAssembler_Build(t *testing.T) {
	t.Run("Empty input produces an empty string", func(t *testing.T) {
		assembler := NewAssembler(1500)
		assert.Equal(t, "", assembler.Build(nil))
		assert.Equal(t, "", assembler.Build([]ScoredDocument{}))
	})

	t.Run("Each document gets a labeled section in ranked order", func(t *testing.T) {
		assembler := NewAssembler(1500)
		block := assembler.Build([]ScoredDocument{
			{Document: models.KnowledgeContent{Title: "Artikel Satu", Summary: "Ringkasan satu", Content: "Isi satu"}, Score: 9},
			{Document: models.KnowledgeContent{Title: "Artikel Dua", Summary: "Ringkasan dua", Content: "Isi dua"}, Score: 4},
		})

		assert.Contains(t, block, "Sumber [1]: Artikel Satu")
		assert.Contains(t, block, "Sumber [2]: Artikel Dua")
		assert.Contains(t, block, "Ringkasan satu")
		assert.Contains(t, block, "Isi dua")
		assert.Less(t, strings.Index(block, "Artikel Satu"), strings.Index(block, "Artikel Dua"))
	})

	t.Run("Content excerpt is bounded by the character budget", func(t *testing.T) {
		assembler := NewAssembler(10)
		long := strings.Repeat("abcde ", 100)
		block := assembler.Build([]ScoredDocument{
			{Document: models.KnowledgeContent{Title: "Panjang", Content: long}},
		})

		assert.Contains(t, block, long[:10]+"...")
		assert.NotContains(t, block, long[:50])
	})

	t.Run("Short content is emitted unmodified", func(t *testing.T) {
		assembler := NewAssembler(1500)
		block := assembler.Build([]ScoredDocument{
			{Document: models.KnowledgeContent{Title: "Pendek", Content: "Isi singkat."}},
		})
		assert.Contains(t, block, "Isi singkat.")
		assert.NotContains(t, block, "Isi singkat....")
	})

	t.Run("Missing summary does not emit an empty summary line", func(t *testing.T) {
		assembler := NewAssembler(1500)
		block := assembler.Build([]ScoredDocument{
			{Document: models.KnowledgeContent{Title: "Tanpa Ringkasan", Content: "Isi"}},
		})
		assert.NotContains(t, block, "Ringkasan:")
	})
}

func TestCitations(t *testing.T) {
	docs := []ScoredDocument{
		{Document: models.KnowledgeContent{Title: "Artikel Satu", Type: models.ContentTypeArticle}},
		{Document: models.KnowledgeContent{Title: "Jurnal Dua", Type: models.ContentTypeJournal}},
	}

	citations := Citations(docs)
	assert.Equal(t, []models.SourceCitation{
		{Title: "Artikel Satu", Type: "article"},
		{Title: "Jurnal Dua", Type: "journal"},
	}, citations)

	assert.Empty(t, Citations(nil))
}
