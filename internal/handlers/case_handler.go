package handlers

import (
	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type CaseHandler struct {
	BaseHandler
	cases *services.CaseService
}

func NewCaseHandler(base BaseHandler, cases *services.CaseService) *CaseHandler {
	return &CaseHandler{BaseHandler: base, cases: cases}
}

func (h *CaseHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/cases", h.Create)
	r.GET("/cases", h.List)
	r.GET("/cases/:id", h.Get)
	r.PUT("/cases/:id", h.Update)
	r.DELETE("/cases/:id", h.Delete)
	r.POST("/cases/:id/status", h.ChangeStatus)
	r.POST("/cases/:id/clients", h.AttachClient)
	r.DELETE("/cases/:id/clients/:clientID", h.DetachClient)
	r.POST("/cases/:id/milestones", h.AddMilestone)
	r.GET("/cases/:id/milestones", h.ListMilestones)
}

func (h *CaseHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCaseRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	kase, err := h.cases.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, kase)
}

func (h *CaseHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ListCasesRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	cases, total, err := h.cases.List(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.BaseHandler.List(c, cases, req.Pagination, total)
}

func (h *CaseHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	kase, err := h.cases.GetOwned(c.Request.Context(), userID, caseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, kase)
}

func (h *CaseHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCaseRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	kase, err := h.cases.Update(c.Request.Context(), userID, caseID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, kase)
}

func (h *CaseHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cases.Delete(c.Request.Context(), userID, caseID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"deleted": true})
}

// ChangeStatus transitions the case and fires the status-change SMS.
func (h *CaseHandler) ChangeStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeCaseStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	kase, err := h.cases.ChangeStatus(c.Request.Context(), userID, caseID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, kase)
}

func (h *CaseHandler) AttachClient(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AttachClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.cases.AttachClient(c.Request.Context(), userID, caseID, req.ClientID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"attached": true})
}

func (h *CaseHandler) DetachClient(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	clientID, ok := h.ParseUUIDParam(c, "clientID")
	if !ok {
		return
	}

	if err := h.cases.DetachClient(c.Request.Context(), userID, caseID, clientID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"detached": true})
}

func (h *CaseHandler) AddMilestone(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateMilestoneRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	milestone, err := h.cases.AddMilestone(c.Request.Context(), userID, caseID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, milestone)
}

func (h *CaseHandler) ListMilestones(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	caseID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	milestones, err := h.cases.ListMilestones(c.Request.Context(), userID, caseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, milestones)
}
