package api

import (
	"net/http"

	"mindhaven/middleware"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
)

// ChatRequest is the payload for one chat turn. UserID is optional;
// anonymous callers get a minted guest identity echoed back so the
// conversation can continue.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id"`
}

// ChatHandler processes a user message: retrieves knowledge context,
// calls the completion service and returns the reply with source
// citations for UI display.
func (h *APIHandler) ChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Message is required", err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		userID = req.UserID
	}
	if userID == "" {
		userID = "guest-" + utils.GenerateID()
	}

	reply, sources, err := h.chatService.ProcessMessage(userID, req.Message)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to process message", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":   reply,
		"sources": sources,
		"user_id": userID,
	})
}

// ChatHistoryHandler returns the caller's conversation so far.
func (h *APIHandler) ChatHistoryHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		userID = c.Query("user_id")
	}
	if userID == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	history, err := h.chatService.GetChatHistory(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch chat history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": history, "count": len(history)})
}
