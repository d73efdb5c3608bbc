package models

import "time"

// ContentType classifies where a piece of knowledge content came from.
type ContentType string

const (
	ContentTypeArticle ContentType = "article"
	ContentTypeNews    ContentType = "news"
	ContentTypePDF     ContentType = "pdf"
	ContentTypeJournal ContentType = "journal"
)

// ContentStatus is the approval-workflow status of a knowledge document.
// Transitions are one-way: pending -> approved or pending -> rejected.
type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
	StatusRejected ContentStatus = "rejected"
)

// KnowledgeContent represents a document in the community knowledge base.
// Only documents with Status == StatusApproved are visible to search and
// chat-context retrieval.
//
// ReviewedAt/ReviewedBy/Feedback are only populated by the approve/reject
// transitions; Feedback is only ever set on rejection.
type KnowledgeContent struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Title      string        `gorm:"not null" json:"title"`
	Summary    string        `json:"summary"`
	Content    string        `gorm:"type:text" json:"content"`
	Type       ContentType   `gorm:"default:article" json:"type"`
	Category   string        `gorm:"index" json:"category"` // one of CategoryIDs
	AuthorID   string        `gorm:"index" json:"author_id"`
	AuthorName string        `json:"author_name"`
	Status     ContentStatus `gorm:"index;default:pending" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	ReviewedAt *time.Time    `json:"reviewed_at,omitempty"`
	ReviewedBy *string       `json:"reviewed_by,omitempty"`
	Feedback   *string       `json:"feedback,omitempty"`
}

// TableName specifies the table name for the KnowledgeContent model.
func (KnowledgeContent) TableName() string {
	return "knowledge_contents"
}

// Category is one entry of the fixed topic catalog.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Categories is the closed set of topic tags a document may carry.
var Categories = []Category{
	{ID: "anxiety", Label: "Kecemasan & Stres", Icon: "🧠"},
	{ID: "depression", Label: "Depresi", Icon: "💭"},
	{ID: "child-mental-health", Label: "Kesehatan Mental Anak & Remaja", Icon: "👶"},
	{ID: "relationships", Label: "Hubungan & Keluarga", Icon: "💕"},
	{ID: "digital-mental-health", Label: "Media Sosial & Teknologi", Icon: "📱"},
	{ID: "mindfulness", Label: "Mindfulness", Icon: "🧘"},
	{ID: "self-care", Label: "Perawatan Diri", Icon: "🌱"},
	{ID: "therapy", Label: "Terapi & Pengobatan", Icon: "🩺"},
	{ID: "general", Label: "Kesehatan Mental Umum", Icon: "✨"},
}

// IsValidCategory reports whether id belongs to the fixed catalog.
func IsValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
