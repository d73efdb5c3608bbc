package repository

import (
	"errors"
	"sync"

	"mindhaven/models"
)

// ChatRepository stores per-user chat history. Conversations are
// ephemeral session state, so an in-memory store is sufficient.
type ChatRepository interface {
	SaveMessage(message models.ChatMessage) error
	GetMessagesByUserID(userID string) ([]models.ChatMessage, error)
}

type chatRepository struct {
	messages map[string][]models.ChatMessage
	mu       sync.RWMutex
}

// NewChatRepository creates a chat repository instance.
func NewChatRepository() ChatRepository {
	return &chatRepository{
		messages: make(map[string][]models.ChatMessage),
	}
}

// SaveMessage appends a message to the user's history. Message IDs are
// assigned sequentially within each user's list.
func (r *chatRepository) SaveMessage(message models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.UserID == "" {
		return errors.New("cannot save message: UserID is empty")
	}

	userMessages := r.messages[message.UserID]
	message.ID = uint(len(userMessages) + 1)
	r.messages[message.UserID] = append(userMessages, message)
	return nil
}

// GetMessagesByUserID returns a copy of the user's history. An unknown
// user yields an empty slice, not an error.
func (r *chatRepository) GetMessagesByUserID(userID string) ([]models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userMessages, exists := r.messages[userID]
	if !exists || len(userMessages) == 0 {
		return []models.ChatMessage{}, nil
	}

	result := make([]models.ChatMessage, len(userMessages))
	copy(result, userMessages)
	return result, nil
}
