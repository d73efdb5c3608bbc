package api

import (
	"net/http"

	"mindhaven/middleware"
	"mindhaven/models"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler creates a new account. The password is stored as a
// bcrypt hash; duplicate emails are rejected with 409.
func (h *APIHandler) RegisterHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Name, email, and password are required", err)
		return
	}

	existing, err := h.userRepo.GetByEmail(req.Email)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "An error occurred during registration", err)
		return
	}
	if existing != nil {
		utils.SendJSONError(c, http.StatusConflict, "User with this email already exists", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "An error occurred during registration", err)
		return
	}

	role := models.RoleUser
	switch models.UserRole(req.Role) {
	case models.RoleContributor:
		role = models.RoleContributor
	case models.RoleAdmin:
		// Admin accounts are provisioned out of band, never self-registered.
	}

	user := &models.User{
		ID:           utils.GenerateID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.userRepo.Create(user); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "An error occurred during registration", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginHandler verifies credentials and issues a JWT. Unknown emails
// and wrong passwords both yield the same generic 401.
func (h *APIHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	user, err := h.userRepo.GetByEmail(req.Email)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "An error occurred during login", err)
		return
	}
	if user == nil {
		utils.SendJSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.SendJSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := middleware.IssueToken(user)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "An error occurred during login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
