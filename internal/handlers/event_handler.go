package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
)

type EventHandler struct {
	BaseHandler
	events *services.EventService
}

func NewEventHandler(base BaseHandler, events *services.EventService) *EventHandler {
	return &EventHandler{BaseHandler: base, events: events}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/events", h.Create)
	r.GET("/events", h.ListEvents)
	r.GET("/events/upcoming", h.Upcoming)
	r.GET("/events/:id", h.Get)
	r.PUT("/events/:id", h.Update)
	r.DELETE("/events/:id", h.Delete)
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, err := h.events.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ListEventsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	events, total, err := h.events.List(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.List(c, events, req.Pagination, total)
}

// Upcoming returns the user's events for the next N days (default 7).
func (h *EventHandler) Upcoming(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	events, err := h.events.Upcoming(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	eventID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.events.GetOwned(c.Request.Context(), userID, eventID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	eventID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, err := h.events.Update(c.Request.Context(), userID, eventID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	eventID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.events.Delete(c.Request.Context(), userID, eventID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"deleted": true})
}
