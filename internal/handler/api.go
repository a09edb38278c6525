package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cipherlab-go/internal/auth"
	"github.com/cipherlab-go/internal/config"
	"github.com/cipherlab-go/internal/dao"
	apperrors "github.com/cipherlab-go/internal/errors"
)

// APIHandler handles authentication and account routes.
type APIHandler struct {
	cfg     *config.Config
	jwtAuth *auth.JWTAuth
	userDAO *dao.UserDAO
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(cfg *config.Config, userDAO *dao.UserDAO) *APIHandler {
	expireHours := cfg.JWTExpire
	if expireHours <= 0 {
		expireHours = 24
	}
	return &APIHandler{
		cfg:     cfg,
		jwtAuth: auth.NewJWTAuth(cfg.JWTSecret, time.Duration(expireHours)*time.Hour),
		userDAO: userDAO,
	}
}

// JWT exposes the token validator for the auth middleware.
func (h *APIHandler) JWT() *auth.JWTAuth {
	return h.jwtAuth
}

// Login handles POST /api/login
func (h *APIHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.NewInvalidInput("invalid request body"))
		return
	}

	if err := h.userDAO.Validate(req.Username, req.Password); err != nil {
		RespondError(c, apperrors.NewUnauthorized("invalid username or password"))
		return
	}

	token, err := h.jwtAuth.GenerateToken(req.Username)
	if err != nil {
		RespondError(c, apperrors.NewInternalWithCause("failed to issue token", err))
		return
	}

	RespondSuccess(c, gin.H{
		"username": req.Username,
		"token":    token,
	})
}

// GetUserInfo handles GET /api/user
func (h *APIHandler) GetUserInfo(c *gin.Context) {
	username := c.GetString("username")
	user, err := h.userDAO.Get(username)
	if err != nil {
		RespondError(c, apperrors.NewNotFound("user not found"))
		return
	}
	RespondSuccess(c, gin.H{"username": user.Username})
}

// UpdatePassword handles POST /api/user/password
func (h *APIHandler) UpdatePassword(c *gin.Context) {
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.NewInvalidInput("invalid request body"))
		return
	}
	if len(req.NewPassword) < 6 {
		RespondError(c, apperrors.NewInvalidInput("new password must be at least 6 characters"))
		return
	}

	username := c.GetString("username")
	if err := h.userDAO.Validate(username, req.OldPassword); err != nil {
		RespondError(c, apperrors.NewUnauthorized("old password is incorrect"))
		return
	}
	if err := h.userDAO.UpdatePassword(username, req.NewPassword); err != nil {
		RespondError(c, apperrors.NewInternalWithCause("failed to update password", err))
		return
	}
	RespondSuccessMsg(c, "password updated")
}
