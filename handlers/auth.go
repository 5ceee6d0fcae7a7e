package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/krycha420/fast-food/config"
	"github.com/krycha420/fast-food/middleware"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthHandler issues admin tokens for the seeding surface.
type AuthHandler struct {
	passwordHash []byte
}

func NewAuthHandler(cfg config.AdminConfig) *AuthHandler {
	return &AuthHandler{passwordHash: cfg.PasswordHash}
}

// Login checks the admin password and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := middleware.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
