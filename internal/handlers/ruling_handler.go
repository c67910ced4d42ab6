package handlers

import (
	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type RulingHandler struct {
	BaseHandler
	rulings *services.RulingService
}

func NewRulingHandler(base BaseHandler, rulings *services.RulingService) *RulingHandler {
	return &RulingHandler{BaseHandler: base, rulings: rulings}
}

func (h *RulingHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/rulings", h.Create)
	r.GET("/rulings", h.ListRulings)
	r.GET("/rulings/:id", h.Get)
	r.PUT("/rulings/:id", h.Update)
	r.DELETE("/rulings/:id", h.Delete)
	r.POST("/rulings/:id/annotations", h.Annotate)
	r.GET("/rulings/:id/annotations", h.ListAnnotations)
	r.GET("/judges", h.ListJudges)
	r.GET("/tags", h.ListTags)
}

func (h *RulingHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRulingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ruling, err := h.rulings.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, ruling)
}

func (h *RulingHandler) ListRulings(c *gin.Context) {
	var req dto.ListRulingsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	rulings, total, err := h.rulings.List(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.List(c, rulings, req.Pagination, total)
}

func (h *RulingHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	ruling, err := h.rulings.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, ruling)
}

func (h *RulingHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRulingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ruling, err := h.rulings.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, ruling)
}

func (h *RulingHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.rulings.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"deleted": true})
}

func (h *RulingHandler) Annotate(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateAnnotationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	annotation, err := h.rulings.Annotate(c.Request.Context(), userID, id, req.Text)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, annotation)
}

func (h *RulingHandler) ListAnnotations(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	annotations, err := h.rulings.ListAnnotations(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, annotations)
}

func (h *RulingHandler) ListJudges(c *gin.Context) {
	judges, err := h.rulings.ListJudges(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, judges)
}

func (h *RulingHandler) ListTags(c *gin.Context) {
	tags, err := h.rulings.ListTags(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, tags)
}
