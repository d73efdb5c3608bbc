package api

import (
	"net/http"
	"strconv"

	"mindhaven/config"
	"mindhaven/middleware"
	"mindhaven/models"
	"mindhaven/services"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
)

// SubmitContentRequest is the payload for a contributor submission.
type SubmitContentRequest struct {
	Title    string `json:"title" binding:"required"`
	Summary  string `json:"summary"`
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// RejectRequest carries the reviewer's feedback for the contributor.
type RejectRequest struct {
	Feedback string `json:"feedback"`
}

// searchResult is the API shape of one ranked search hit.
type searchResult struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Category   string `json:"category"`
	Type       string `json:"type"`
	AuthorName string `json:"author_name"`
	CreatedAt  string `json:"created_at"`
	Score      int    `json:"score"`
}

// CategoriesHandler returns the fixed topic catalog.
func (h *APIHandler) CategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}

// ListKnowledgeHandler lists documents. The public view is restricted
// to approved documents; authenticated admins may filter by any status
// to drive the review queue.
func (h *APIHandler) ListKnowledgeHandler(c *gin.Context) {
	status := models.StatusApproved
	if requested := c.Query("status"); requested != "" {
		if c.GetString(middleware.ContextUserRole) != string(models.RoleAdmin) {
			utils.SendJSONError(c, http.StatusForbidden, "Only admins may filter by status", nil)
			return
		}
		status = models.ContentStatus(requested)
	}

	contents, err := h.knowledgeService.List(status, c.Query("category"))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch content", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": contents, "count": len(contents)})
}

// SearchKnowledgeHandler ranks approved documents against a free-text
// query, with an optional category filter applied after scoring.
func (h *APIHandler) SearchKnowledgeHandler(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")
	limit := config.AppConfig.Retrieval.SearchLimit
	if requested := c.Query("limit"); requested != "" {
		if parsed, err := strconv.Atoi(requested); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	scored := h.knowledgeService.Search(query, category, limit)
	results := make([]searchResult, 0, len(scored))
	for _, sd := range scored {
		doc := sd.Document
		results = append(results, searchResult{
			ID:         doc.ID,
			Title:      doc.Title,
			Summary:    doc.Summary,
			Category:   doc.Category,
			Type:       string(doc.Type),
			AuthorName: doc.AuthorName,
			CreatedAt:  utils.FormatTime(doc.CreatedAt),
			Score:      sd.Score,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// SubmitKnowledgeHandler accepts a new contribution; it enters the
// approval workflow as pending.
func (h *APIHandler) SubmitKnowledgeHandler(c *gin.Context) {
	var req SubmitContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Missing required fields", err)
		return
	}

	authorID := c.GetString(middleware.ContextUserID)
	author, err := h.userRepo.GetByID(authorID)
	if err != nil || author == nil {
		utils.SendJSONError(c, http.StatusUnauthorized, "Unknown author", err)
		return
	}

	content, err := h.knowledgeService.Submit(services.SubmitContentInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		Type:       models.ContentType(req.Type),
		Category:   req.Category,
		AuthorID:   author.ID,
		AuthorName: author.Name,
	})
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create content", err)
		return
	}
	c.JSON(http.StatusCreated, content)
}

// MyContentHandler lists the calling contributor's submissions.
func (h *APIHandler) MyContentHandler(c *gin.Context) {
	authorID := c.GetString(middleware.ContextUserID)
	contents, err := h.knowledgeService.ListByAuthor(authorID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch content", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": contents, "count": len(contents)})
}

// PendingKnowledgeHandler lists the review queue for admins.
func (h *APIHandler) PendingKnowledgeHandler(c *gin.Context) {
	contents, err := h.knowledgeService.ListPending()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to fetch review queue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": contents, "count": len(contents)})
}

// ApproveKnowledgeHandler approves a pending document, making it
// visible to search and chat context.
func (h *APIHandler) ApproveKnowledgeHandler(c *gin.Context) {
	id, ok := parseContentID(c)
	if !ok {
		return
	}
	content, err := h.knowledgeService.Approve(id, c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Failed to approve content", err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// RejectKnowledgeHandler rejects a pending document with feedback.
func (h *APIHandler) RejectKnowledgeHandler(c *gin.Context) {
	id, ok := parseContentID(c)
	if !ok {
		return
	}
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	content, err := h.knowledgeService.Reject(id, c.GetString(middleware.ContextUserID), req.Feedback)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Failed to reject content", err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// DeleteKnowledgeHandler permanently removes a document.
func (h *APIHandler) DeleteKnowledgeHandler(c *gin.Context) {
	id, ok := parseContentID(c)
	if !ok {
		return
	}
	if err := h.knowledgeService.Delete(id); err != nil {
		utils.SendJSONError(c, http.StatusNotFound, "Failed to delete content", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}

func parseContentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid content ID", err)
		return 0, false
	}
	return uint(id), true
}
