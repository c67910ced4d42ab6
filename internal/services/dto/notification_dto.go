package dto

import (
	"github.com/google/uuid"

	"legalassist_backend/internal/sms"
)

// Notification test types accepted by the test-send endpoint.
const (
	TestTypeCourtReminder    = "court_reminder"
	TestTypeDocumentDeadline = "document_deadline"
	TestTypeStatusUpdate     = "status_update"
)

type UpdatePhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type TestNotificationRequest struct {
	Type   string    `json:"type" validate:"required,oneof=court_reminder document_deadline status_update"`
	CaseID uuid.UUID `json:"case_id" validate:"required"`
}

type NotificationPreferencesResponse struct {
	Phone       string            `json:"phone"`
	RecentSends []sms.SentMessage `json:"recent_sends"`
}
