package handlers

import (
	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type ResearchHandler struct {
	BaseHandler
	research *services.ResearchService
}

func NewResearchHandler(base BaseHandler, research *services.ResearchService) *ResearchHandler {
	return &ResearchHandler{BaseHandler: base, research: research}
}

func (h *ResearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/research", h.Create)
	r.GET("/research", h.ListResearch)
	r.GET("/research/:id", h.Get)
	r.DELETE("/research/:id", h.Delete)
}

func (h *ResearchHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateResearchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	record, err := h.research.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, record)
}

func (h *ResearchHandler) ListResearch(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var page dto.Pagination
	if !h.BindAndValidateQuery(c, &page) {
		return
	}

	records, total, err := h.research.List(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.List(c, records, page, total)
}

func (h *ResearchHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.research.GetOwned(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, record)
}

func (h *ResearchHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.research.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"deleted": true})
}
