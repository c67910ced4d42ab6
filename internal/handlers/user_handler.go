package handlers

import (
	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type UserHandler struct {
	BaseHandler
	users      *services.UserService
	activities *services.ActivityService
}

func NewUserHandler(base BaseHandler, users *services.UserService, activities *services.ActivityService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users, activities: activities}
}

func (h *UserHandler) RegisterRoutes(r, admin *gin.RouterGroup) {
	r.PUT("/profile", h.UpdateProfile)
	r.GET("/activities", h.ListActivities)
	admin.GET("/users", h.ListUsers)
	admin.PUT("/users/:id/role", h.ChangeRole)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, user)
}

// ListActivities returns the caller's recent audit feed.
func (h *UserHandler) ListActivities(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var page dto.Pagination
	if !h.BindAndValidateQuery(c, &page) {
		return
	}

	activities, total, err := h.activities.ListByUser(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.List(c, activities, page, total)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var page dto.Pagination
	if !h.BindAndValidateQuery(c, &page) {
		return
	}

	users, total, err := h.users.List(c.Request.Context(), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.List(c, users, page, total)
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.users.ChangeRole(c.Request.Context(), id, req.Role); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"role": req.Role})
}
