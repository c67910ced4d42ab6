package handlers

import (
	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type ClientHandler struct {
	BaseHandler
	clients *services.ClientService
}

func NewClientHandler(base BaseHandler, clients *services.ClientService) *ClientHandler {
	return &ClientHandler{BaseHandler: base, clients: clients}
}

func (h *ClientHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/clients", h.Create)
	r.GET("/clients", h.ListClients)
	r.GET("/clients/:id", h.Get)
	r.PUT("/clients/:id", h.Update)
	r.DELETE("/clients/:id", h.Delete)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clients.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, client)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	var page dto.Pagination
	if !h.BindAndValidateQuery(c, &page) {
		return
	}

	clients, total, err := h.clients.List(c.Request.Context(), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.List(c, clients, page, total)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clients.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"deleted": true})
}
