package models

import "time"

// ChatMessage is one turn of a conversation with the assistant.
type ChatMessage struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SourceCitation is a lightweight reference to a knowledge document that
// contributed context to a generated reply, for display alongside it.
type SourceCitation struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}
