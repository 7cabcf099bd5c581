package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolsync/ptm-api/internal/models"
	"github.com/schoolsync/ptm-api/internal/service"
	"github.com/schoolsync/ptm-api/internal/session"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
	"github.com/schoolsync/ptm-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req service.LoginRequest) (*models.User, error)
}

// AuthHandler wires the login, logout and session-check endpoints.
type AuthHandler struct {
	auth     authService
	sessions *session.Codec
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth authService, sessions *session.Codec) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Login godoc
// @Summary Authenticate a parent or teacher
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Missing required fields"))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.Write(c, *user); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Internal server error"))
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": user})
}

// Check godoc
// @Summary Return the current session user
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	// Never errors to the caller: an absent or unreadable cookie is simply
	// an anonymous visitor.
	user := h.sessions.Read(c)
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	response.OK(c, http.StatusOK, nil)
}
