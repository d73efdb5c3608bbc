package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"mindhaven/models"
	"mindhaven/repository"
)

// journalRecord is the on-disk shape of one extracted research journal
// in data/journals.json.
type journalRecord struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Summary   string `json:"summary"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	AddedDate string `json:"addedDate"`
}

// journalCategoryMapping maps the research journal taxonomy onto the
// knowledge base category catalog.
var journalCategoryMapping = map[string]string{
	"Kesehatan Mental Anak & Remaja": "child-mental-health",
	"Depresi":                        "depression",
	"Anxiety & Gangguan Cemas":       "anxiety",
	"Stress Management":              "anxiety",
	"Media Sosial & Teknologi":       "digital-mental-health",
	"Hubungan Sosial":                "relationships",
	"Kesehatan Mental Komunitas":     "general",
	"Pencegahan & Promosi":           "general",
	"Psikoedukasi & Literasi":        "general",
	"Generasi Z":                     "child-mental-health",
	"Kesehatan Mental Umum":          "general",
}

// JournalImportService merges extracted research journals into the
// knowledge pool as pre-approved documents, so search and chat context
// retrieval see them alongside community articles.
type JournalImportService struct {
	repo     repository.KnowledgeRepository
	dataPath string
}

// NewJournalImportService creates the import service over the given
// journals data file.
func NewJournalImportService(repo repository.KnowledgeRepository, dataPath string) *JournalImportService {
	return &JournalImportService{repo: repo, dataPath: dataPath}
}

// Sync imports the journal documents once: when the pool already holds
// journal-typed documents, or the data file is absent, it is a no-op.
func (s *JournalImportService) Sync() error {
	count, err := s.repo.CountByType(models.ContentTypeJournal)
	if err != nil {
		return fmt.Errorf("failed to check existing journal documents: %w", err)
	}
	if count > 0 {
		log.Printf("INFO: [JournalImport] %d journal documents already imported, skipping.", count)
		return nil
	}

	data, err := os.ReadFile(s.dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN: [JournalImport] Journal data file '%s' not found, nothing to import.", s.dataPath)
			return nil
		}
		return fmt.Errorf("failed to read journal data file '%s': %w", s.dataPath, err)
	}

	var records []journalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse journal data file '%s': %w", s.dataPath, err)
	}

	imported := 0
	for _, record := range records {
		title := record.Title
		if title == "" {
			title = record.Filename
		}
		category, ok := journalCategoryMapping[record.Category]
		if !ok {
			category = "general"
		}
		author := record.Author
		if author == "" {
			author = "Research & References"
		}
		createdAt := time.Now()
		if record.AddedDate != "" {
			if parsed, parseErr := time.Parse(time.RFC3339, record.AddedDate); parseErr == nil {
				createdAt = parsed
			}
		}

		content := &models.KnowledgeContent{
			Title:      title,
			Summary:    record.Summary,
			Content:    record.Content,
			Type:       models.ContentTypeJournal,
			Category:   category,
			AuthorID:   "system-journals",
			AuthorName: author,
			CreatedAt:  createdAt,
		}
		if err := s.repo.Import(content); err != nil {
			log.Printf("ERROR: [JournalImport] Failed to import journal '%s': %v", title, err)
			continue
		}
		imported++
	}

	log.Printf("INFO: [JournalImport] Imported %d of %d journal documents.", imported, len(records))
	return nil
}

// ListImported returns the journal documents currently in the pool.
func (s *JournalImportService) ListImported() ([]models.KnowledgeContent, error) {
	all, err := s.repo.GetApproved()
	if err != nil {
		return nil, err
	}
	journals := make([]models.KnowledgeContent, 0)
	for _, doc := range all {
		if doc.Type == models.ContentTypeJournal {
			journals = append(journals, doc)
		}
	}
	return journals, nil
}
