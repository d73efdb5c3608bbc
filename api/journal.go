package api

import (
	"net/http"
	"strconv"

	"mindhaven/middleware"
	"mindhaven/models"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
)

// JournalEntryRequest is the payload for a personal journal entry.
type JournalEntryRequest struct {
	Content string `json:"content" binding:"required"`
	Mood    string `json:"mood"`
}

// CreateJournalEntryHandler stores a private journal entry for the
// authenticated user.
func (h *APIHandler) CreateJournalEntryHandler(c *gin.Context) {
	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Content is required", err)
		return
	}

	mood := models.Mood(req.Mood)
	switch mood {
	case models.MoodHappy, models.MoodNeutral, models.MoodSad, models.MoodAnxious:
	default:
		mood = models.MoodNeutral
	}

	entry := &models.JournalEntry{
		UserID:  c.GetString(middleware.ContextUserID),
		Content: req.Content,
		Mood:    mood,
	}
	if err := h.journalRepo.Create(entry); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to save journal entry", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListJournalEntriesHandler returns the authenticated user's entries,
// newest first.
func (h *APIHandler) ListJournalEntriesHandler(c *gin.Context) {
	entries, err := h.journalRepo.GetByUserID(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch journal entries", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// DeleteJournalEntryHandler removes one of the caller's own entries.
func (h *APIHandler) DeleteJournalEntryHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid entry ID", err)
		return
	}
	if err := h.journalRepo.Delete(uint(id), c.GetString(middleware.ContextUserID)); err != nil {
		utils.SendJSONError(c, http.StatusNotFound, "Journal entry not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted"})
}

// ImportedJournalsHandler lists the research journal documents merged
// into the knowledge pool.
func (h *APIHandler) ImportedJournalsHandler(c *gin.Context) {
	journals, err := h.journalImport.ListImported()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load journals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(journals),
		"journals": journals,
	})
}
