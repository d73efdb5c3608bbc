package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"mindhaven/config"
	"mindhaven/models"
	"mindhaven/repository"
	"mindhaven/retrieval"

	openai "github.com/sashabaranov/go-openai"
)

// ContextRetriever selects the knowledge documents injected as chat
// context. Satisfied by *retrieval.Service.
type ContextRetriever interface {
	FindRelevant(query string, limit int) []retrieval.ScoredDocument
}

// ChatService handles a user chat message end to end: context
// retrieval, prompt assembly, the completion call, and history.
type ChatService interface {
	ProcessMessage(userID, message string) (string, []models.SourceCitation, error)
	GetChatHistory(userID string) ([]models.ChatMessage, error)
}

type chatService struct {
	chatRepo     repository.ChatRepository
	retriever    ContextRetriever
	assembler    *retrieval.Assembler
	contextLimit int
}

// NewChatService creates the chat service.
func NewChatService(chatRepo repository.ChatRepository, retriever ContextRetriever, assembler *retrieval.Assembler, contextLimit int) ChatService {
	return &chatService{
		chatRepo:     chatRepo,
		retriever:    retriever,
		assembler:    assembler,
		contextLimit: contextLimit,
	}
}

// ProcessMessage retrieves context for the message, asks the completion
// service for a reply and returns it together with source citations.
// A completion failure or missing provider configuration produces a
// rule-based supportive fallback reply instead of an error; retrieval
// failures already surface as an empty context inside the retriever.
func (s *chatService) ProcessMessage(userID, message string) (string, []models.SourceCitation, error) {
	if err := s.chatRepo.SaveMessage(models.ChatMessage{
		UserID:    userID,
		Role:      "user",
		Content:   message,
		Timestamp: time.Now(),
	}); err != nil {
		log.Printf("WARN: [ChatService] Failed to save user message for '%s': %v", userID, err)
	}

	docs := s.retriever.FindRelevant(message, s.contextLimit)
	contextBlock := s.assembler.Build(docs)
	citations := retrieval.Citations(docs)

	reply, err := s.complete(userID, message, contextBlock)
	if err != nil {
		log.Printf("WARN: [ChatService] Completion call failed for user '%s', using fallback reply: %v", userID, err)
		reply = fallbackReply(message)
	}

	if err := s.chatRepo.SaveMessage(models.ChatMessage{
		UserID:    userID,
		Role:      "assistant",
		Content:   reply,
		Timestamp: time.Now(),
	}); err != nil {
		log.Printf("WARN: [ChatService] Failed to save assistant reply for '%s': %v", userID, err)
	}

	return reply, citations, nil
}

func (s *chatService) complete(userID, message, contextBlock string) (string, error) {
	provider := config.AppConfig.LLMProvider
	if provider.APIKey == "" || provider.BaseURL == "" || provider.Model == "" {
		return "", fmt.Errorf("no completion provider configured")
	}

	clientConfig := openai.DefaultConfig(provider.APIKey)
	clientConfig.BaseURL = provider.BaseURL
	client := openai.NewClientWithConfig(clientConfig)

	llmMessages := []openai.ChatCompletionMessage{}
	if systemPrompt := config.AppConfig.LLMSystemPrompt; systemPrompt != "" {
		llmMessages = append(llmMessages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	if contextBlock != "" {
		llmMessages = append(llmMessages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Konteks dari basis pengetahuan:\n\n" + contextBlock,
		})
	}

	// Recent history, excluding the user message just saved.
	const historyLimit = 10
	history, _ := s.chatRepo.GetMessagesByUserID(userID)
	if len(history) > 0 {
		history = history[:len(history)-1]
	}
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if strings.EqualFold(msg.Role, "assistant") {
			role = openai.ChatMessageRoleAssistant
		}
		llmMessages = append(llmMessages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	llmMessages = append(llmMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model:    provider.Model,
		Messages: llmMessages,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// fallbackReply produces a supportive rule-based reply for when no
// completion provider is reachable.
func fallbackReply(message string) string {
	text := strings.ToLower(message)
	switch {
	case containsAny(text, "sad", "sedih", "depressed", "depresi", "lonely", "kesepian"):
		return "I'm sorry you're feeling this way. It takes courage to share that. Remember that your feelings are valid. Would you like to talk about what might be causing these feelings?"
	case containsAny(text, "anxious", "cemas", "worry", "khawatir", "stress", "stres"):
		return "It sounds like you're carrying a heavy load right now. Let's take a deep breath together. What's one thing that is worrying you the most at this moment?"
	case containsAny(text, "happy", "senang", "good", "great", "bahagia"):
		return "That's wonderful to hear! Holding onto these positive moments is so important. What made you feel this way?"
	case containsAny(text, "help", "tolong", "suicide", "bunuh diri"):
		return "If you are in crisis, please know there is support available. Please reach out to a professional immediately or contact a local emergency number. You are not alone."
	default:
		return "I hear you. Could you tell me more about that?"
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// GetChatHistory returns the user's conversation so far.
func (s *chatService) GetChatHistory(userID string) ([]models.ChatMessage, error) {
	return s.chatRepo.GetMessagesByUserID(userID)
}
