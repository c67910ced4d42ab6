package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/models"
	"legalassist_backend/internal/services"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/internal/sms"
	"legalassist_backend/pkg/apperrors"
)

type NotificationHandler struct {
	BaseHandler
	notifications *services.NotificationService
	users         *services.UserService
	cases         *services.CaseService
	transport     sms.Transport
}

func NewNotificationHandler(
	base BaseHandler,
	notifications *services.NotificationService,
	users *services.UserService,
	cases *services.CaseService,
	transport sms.Transport,
) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:   base,
		notifications: notifications,
		users:         users,
		cases:         cases,
		transport:     transport,
	}
}

func (h *NotificationHandler) RegisterRoutes(r, admin *gin.RouterGroup) {
	r.GET("/notifications/preferences", h.Preferences)
	r.PUT("/notifications/phone", h.UpdatePhone)
	r.POST("/notifications/test", h.SendTest)
	admin.POST("/notifications/send-reminders", h.SendReminders)
}

// Preferences returns the user's contact phone and, when the mock
// transport is active, the messages recently recorded for them.
func (h *NotificationHandler) Preferences(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := dto.NotificationPreferencesResponse{Phone: user.Phone}
	if log, ok := h.transport.(sms.MessageLog); ok && user.Phone != "" {
		resp.RecentSends = log.SentMessages(sms.NormalizePhone(user.Phone))
	}
	h.OK(c, resp)
}

// UpdatePhone sets the phone number notifications go to.
func (h *NotificationHandler) UpdatePhone(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePhoneRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.users.UpdatePhone(c.Request.Context(), userID, req.Phone); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"phone": req.Phone})
}

// SendTest sends one notification of the requested type for a case the
// caller owns.
func (h *NotificationHandler) SendTest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.TestNotificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	kase, err := h.cases.GetOwned(ctx, userID, req.CaseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var result services.Result
	switch req.Type {
	case dto.TestTypeCourtReminder:
		event := &models.Event{
			EventType: models.EventTypeCourtAppearance,
			StartTime: time.Now().Add(48 * time.Hour),
			Location:  "Test Courtroom",
		}
		result = h.notifications.SendCourtDateReminder(ctx, user, kase, event)
	case dto.TestTypeDocumentDeadline:
		document := &models.Document{Title: "Test Document"}
		result = h.notifications.SendDocumentDeadlineReminder(ctx, user, kase, document, time.Now().Add(72*time.Hour))
	case dto.TestTypeStatusUpdate:
		result = h.notifications.SendCaseStatusUpdate(ctx, user, kase, kase.Status)
	default:
		h.HandleServiceError(c, apperrors.UnknownNotificationType(req.Type))
		return
	}

	h.OK(c, result)
}

// SendReminders runs the batch court-appearance sweep. Admin only.
func (h *NotificationHandler) SendReminders(c *gin.Context) {
	sweep := h.notifications.SendScheduledReminders(c.Request.Context())
	h.OK(c, sweep)
}
