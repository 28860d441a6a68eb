package handlers

import (
	"errors"
	"net/http"

	"github.com/awalle000/Fadila-sales-system/middleware"
	"github.com/awalle000/Fadila-sales-system/services/user"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes authentication and staff account management.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func respondAuthError(c *gin.Context, err error) {
	var validationErr *user.ErrValidation
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, user.ErrAccountDeactivated):
		c.JSON(http.StatusForbidden, gin.H{"message": "Your account has been deactivated. Please contact the CEO."})
	case errors.Is(err, user.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		utils.GetLogger().Error("Auth operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	result, err := h.Service.Login(req.Email, req.Password, middleware.ClientIP(c), c.GetHeader("User-Agent"))
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RegisterHandler handles POST /api/auth/register (CEO only).
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid registration payload"})
		return
	}

	created, err := h.Service.Register(req, actor, middleware.ClientIP(c))
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ProfileHandler handles GET /api/auth/profile.
func (h *AuthHandler) ProfileHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	usr, err := h.Service.GetByID(actor.ID)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /api/auth/users (CEO only).
func (h *AuthHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.List()
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetUserStatusHandler handles PUT /api/auth/users/:id/status (CEO only).
func (h *AuthHandler) SetUserStatusHandler(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "isActive is required"})
		return
	}

	usr, err := h.Service.SetActive(c.Param("id"), *req.IsActive)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
