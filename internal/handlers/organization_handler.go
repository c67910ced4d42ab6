package handlers

import (
	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type OrganizationHandler struct {
	BaseHandler
	orgs *services.OrganizationService
}

func NewOrganizationHandler(base BaseHandler, orgs *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{BaseHandler: base, orgs: orgs}
}

func (h *OrganizationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/organizations", h.Create)
	r.GET("/organizations/:id", h.Get)
	r.POST("/organizations/:id/invite", h.Invite)
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrganizationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	org, err := h.orgs.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, org)
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	org, err := h.orgs.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, org)
}

func (h *OrganizationHandler) Invite(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	orgID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.orgs.Invite(c.Request.Context(), userID, orgID, req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"invited": req.Email})
}
