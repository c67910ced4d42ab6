package handlers

import (
	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type AuthHandler struct {
	BaseHandler
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthHandler(base BaseHandler, auth *services.AuthService, users *services.UserService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, auth: auth, users: users}
}

func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)
	public.POST("/auth/refresh", h.Refresh)
	protected.GET("/auth/me", h.Me)
}

// Register creates a new account and returns a token pair.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, resp)
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

// Refresh exchanges a refresh token for a fresh token pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.auth.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, user)
}
