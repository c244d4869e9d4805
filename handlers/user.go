package handlers

import (
	"errors"
	"net/http"

	"doctorchamber/models"
	"doctorchamber/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user registration, role and token endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetAllUsers returns every user record. Admin-gated.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		getLogger(c).Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the email belongs to an admin user.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		getLogger(c).Error("failed to check role", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteUser grants the admin role to the user with the given id.
// Admin-gated.
func (h *UserHandler) PromoteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Promote(id); err != nil {
		getLogger(c).Error("failed to promote user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// RegisterUser stores a new user record.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Service.Register(input)
	if err != nil {
		getLogger(c).Error("failed to register user", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// IssueToken answers a 7-day access token when the email has a user record,
// Forbidden otherwise.
func (h *UserHandler) IssueToken(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Service.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownEmail) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": "", "message": "Request Forbidden"})
			return
		}
		getLogger(c).Error("failed to issue token", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
