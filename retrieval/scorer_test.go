package retrieval

import (
	"testing"

	"mindhaven/models"

	"github.com/stretchr/testify/assert"
)

func terms(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func TestScore(t *testing.T) {
	t.Run("Base point for a content-only match", func(t *testing.T) {
		doc := models.KnowledgeContent{Title: "Panduan Tidur", Content: "mengatasi insomnia dengan rutinitas"}
		assert.Equal(t, 1, Score(doc, terms("insomnia"), DefaultWeights))
	})

	t.Run("Title and summary bonuses stack on the base point", func(t *testing.T) {
		doc := models.KnowledgeContent{
			Title:   "Mengatasi insomnia",
			Summary: "Tips insomnia ringan",
			Content: "insomnia adalah gangguan tidur",
		}
		// 1 base + 3 title + 2 summary
		assert.Equal(t, 6, Score(doc, terms("insomnia"), DefaultWeights))
	})

	t.Run("Title match strictly beats an identical content-only match", func(t *testing.T) {
		inTitle := models.KnowledgeContent{Title: "Memahami insomnia", Content: "gangguan tidur umum"}
		inContent := models.KnowledgeContent{Title: "Memahami gangguan tidur", Content: "insomnia adalah gangguan umum"}
		assert.Greater(t, Score(inTitle, terms("insomnia"), DefaultWeights), Score(inContent, terms("insomnia"), DefaultWeights))
	})

	t.Run("Category participates in the searchable text", func(t *testing.T) {
		doc := models.KnowledgeContent{Title: "Artikel umum", Category: "anxiety"}
		assert.Equal(t, 1, Score(doc, terms("anxiety"), DefaultWeights))
	})

	t.Run("Non-matching document scores zero", func(t *testing.T) {
		doc := models.KnowledgeContent{Title: "Resep masakan", Content: "bahan dan langkah"}
		assert.Zero(t, Score(doc, terms("insomnia"), DefaultWeights))
	})

	t.Run("Score sums across terms", func(t *testing.T) {
		doc := models.KnowledgeContent{Title: "Kecemasan dan stres", Content: "panduan"}
		// each term: 1 base + 3 title
		assert.Equal(t, 8, Score(doc, terms("kecemasan", "stres"), DefaultWeights))
	})
}

func TestRank(t *testing.T) {
	docs := []models.KnowledgeContent{
		{ID: 1, Title: "Memahami gangguan tidur", Content: "insomnia ringan"},
		{ID: 2, Title: "Mengatasi insomnia", Summary: "insomnia berat", Content: "panduan"},
		{ID: 3, Title: "Resep masakan", Content: "bahan"},
	}

	t.Run("Zero-score documents are excluded entirely", func(t *testing.T) {
		ranked := Rank(docs, terms("insomnia"), DefaultWeights, 0)
		assert.Len(t, ranked, 2)
		for _, sd := range ranked {
			assert.NotEqual(t, uint(3), sd.Document.ID)
		}
	})

	t.Run("Results are ordered by descending score", func(t *testing.T) {
		ranked := Rank(docs, terms("insomnia"), DefaultWeights, 0)
		assert.Equal(t, uint(2), ranked[0].Document.ID)
		assert.Equal(t, uint(1), ranked[1].Document.ID)
		assert.Greater(t, ranked[0].Score, ranked[1].Score)
	})

	t.Run("Ties keep the incoming collection order", func(t *testing.T) {
		tied := []models.KnowledgeContent{
			{ID: 10, Title: "x", Content: "insomnia"},
			{ID: 11, Title: "y", Content: "insomnia"},
			{ID: 12, Title: "z", Content: "insomnia"},
		}
		ranked := Rank(tied, terms("insomnia"), DefaultWeights, 0)
		assert.Equal(t, []uint{10, 11, 12}, []uint{ranked[0].Document.ID, ranked[1].Document.ID, ranked[2].Document.ID})
	})

	t.Run("Result list never exceeds the limit", func(t *testing.T) {
		ranked := Rank(docs, terms("insomnia"), DefaultWeights, 1)
		assert.Len(t, ranked, 1)
	})

	t.Run("Limit 1 with two matches returns the higher-scoring document", func(t *testing.T) {
		ranked := Rank(docs, terms("insomnia"), DefaultWeights, 1)
		assert.Equal(t, uint(2), ranked[0].Document.ID)
	})

	t.Run("Empty term set returns nothing", func(t *testing.T) {
		assert.Empty(t, Rank(docs, nil, DefaultWeights, 5))
	})
}
