package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prolink/services/user"
	"prolink/utils"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler exposes registration, login and session resolution.
type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// RegisterHandler handles user registration.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req user.RegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	registered, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registered)
}

// LoginHandler handles user login and returns the user with an access
// token. The failure code distinguishes an unknown account from a bad
// credential.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	authed, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.Error(err))
		utils.JSONError(c, err)
		return
	}

	token, err := utils.GenerateToken(authed.ID, authed.Email, tokenLifetime)
	if err != nil {
		logger.Error("Token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": authed, "token": token})
}

// ResolveHandler restores a previously authenticated identity by id. An
// absent id is a null body, not an error: the caller distinguishes "no
// session" from a hard failure.
func (h *AuthHandler) ResolveHandler(c *gin.Context) {
	resolved, err := h.Users.ResolveSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}
