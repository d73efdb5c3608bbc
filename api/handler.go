package api

import (
	"mindhaven/repository"
	"mindhaven/services"
)

// APIHandler holds all dependencies for API handlers, such as
// repositories and services.
type APIHandler struct {
	userRepo         repository.UserRepository
	journalRepo      repository.JournalRepository
	chatService      services.ChatService
	knowledgeService services.KnowledgeService
	journalImport    *services.JournalImportService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	userRepo repository.UserRepository,
	journalRepo repository.JournalRepository,
	chatService services.ChatService,
	knowledgeService services.KnowledgeService,
	journalImport *services.JournalImportService,
) *APIHandler {
	return &APIHandler{
		userRepo:         userRepo,
		journalRepo:      journalRepo,
		chatService:      chatService,
		knowledgeService: knowledgeService,
		journalImport:    journalImport,
	}
}
