package models

import "time"

// Mood is the self-reported mood attached to a personal journal entry.
type Mood string

const (
	MoodHappy   Mood = "Happy"
	MoodNeutral Mood = "Neutral"
	MoodSad     Mood = "Sad"
	MoodAnxious Mood = "Anxious"
)

// JournalEntry is a private journal entry. Entries are owner-scoped and
// never enter the knowledge retrieval pool.
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Mood      Mood      `gorm:"default:Neutral" json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the JournalEntry model.
func (JournalEntry) TableName() string {
	return "journal_entries"
}
