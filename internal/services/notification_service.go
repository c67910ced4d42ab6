package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/sms"
)

// Result is the outcome of a single notification attempt. Business
// failures (missing phone, provider rejection) live here, not in errors.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SweepResult aggregates one batch reminder run.
type SweepResult struct {
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
	TotalCount   int `json:"total_count"`
}

// PaymentDetails describes a confirmed payment for the confirmation SMS.
type PaymentDetails struct {
	Amount          float64
	PaymentType     string // "subscription" or "tokens"
	TokensPurchased int
	TransactionID   string
}

const errNoPhone = "User has no phone number"

// NotificationService sends SMS notifications and records every attempt
// in the activity feed.
type NotificationService struct {
	transport  sms.Transport
	events     repositories.EventRepository
	activities repositories.ActivityRepository
	now        func() time.Time
}

func NewNotificationService(
	transport sms.Transport,
	events repositories.EventRepository,
	activities repositories.ActivityRepository,
) *NotificationService {
	return &NotificationService{
		transport:  transport,
		events:     events,
		activities: activities,
		now:        time.Now,
	}
}

// SendCourtDateReminder notifies the user about an upcoming court
// appearance for one of their cases.
func (s *NotificationService) SendCourtDateReminder(ctx context.Context, user *models.User, kase *models.Case, event *models.Event) Result {
	if user.Phone == "" {
		return Result{Success: false, Error: errNoPhone}
	}

	days := wholeDaysUntil(event.StartTime, s.now())
	message := fmt.Sprintf(
		"REMINDER: Court appearance for case %s - %s scheduled for %s at %s (%d days from now).",
		kase.CaseNumber, kase.Title,
		event.StartTime.Format("2006-01-02 15:04"), event.Location, days,
	)

	result := s.send(ctx, user.Phone, message)
	s.logActivity(ctx, user, kase, "court date reminder", result.Success)
	return result
}

// SendDocumentDeadlineReminder notifies the user about a document due on a case.
func (s *NotificationService) SendDocumentDeadlineReminder(ctx context.Context, user *models.User, kase *models.Case, document *models.Document, deadline time.Time) Result {
	if user.Phone == "" {
		return Result{Success: false, Error: errNoPhone}
	}

	days := wholeDaysUntil(deadline, s.now())
	message := fmt.Sprintf(
		"DEADLINE: Document '%s' for case %s - %s is due on %s (%d days from now).",
		document.Title, kase.CaseNumber, kase.Title,
		deadline.Format("2006-01-02"), days,
	)

	result := s.send(ctx, user.Phone, message)
	s.logActivity(ctx, user, kase, "document deadline reminder", result.Success)
	return result
}

// SendCaseStatusUpdate notifies the user that a case changed status. The
// status string is echoed verbatim.
func (s *NotificationService) SendCaseStatusUpdate(ctx context.Context, user *models.User, kase *models.Case, newStatus string) Result {
	if user.Phone == "" {
		return Result{Success: false, Error: errNoPhone}
	}

	message := fmt.Sprintf(
		"UPDATE: The status of case %s - %s has changed to: %s.",
		kase.CaseNumber, kase.Title, newStatus,
	)

	result := s.send(ctx, user.Phone, message)
	s.logActivity(ctx, user, kase, "case status update", result.Success)
	return result
}

// SendPaymentConfirmation confirms a received payment. The wording depends
// on whether the payment bought a subscription or tokens.
func (s *NotificationService) SendPaymentConfirmation(ctx context.Context, user *models.User, payment PaymentDetails) Result {
	if user.Phone == "" {
		return Result{Success: false, Error: errNoPhone}
	}

	var message string
	if payment.PaymentType == "subscription" {
		message = fmt.Sprintf(
			"PAYMENT CONFIRMED: Your subscription payment of KSh %.2f has been received. Transaction ID: %s.",
			payment.Amount, payment.TransactionID,
		)
	} else {
		message = fmt.Sprintf(
			"PAYMENT CONFIRMED: Your payment of KSh %.2f for %d tokens has been received. Transaction ID: %s.",
			payment.Amount, payment.TokensPurchased, payment.TransactionID,
		)
	}

	result := s.send(ctx, user.Phone, message)
	s.logActivity(ctx, user, nil, "payment confirmation", result.Success)
	return result
}

// SendScheduledReminders sweeps court appearances starting between 24 and
// 48 hours from now and sends a reminder for each. Failures on individual
// events never stop the sweep.
func (s *NotificationService) SendScheduledReminders(ctx context.Context) SweepResult {
	now := s.now()
	from := now.Add(24 * time.Hour)
	to := now.Add(48 * time.Hour)

	events, err := s.events.FindUpcomingCourtAppearances(ctx, from, to)
	if err != nil {
		logger.CtxError(ctx, "reminder sweep query failed", "error", err)
		return SweepResult{}
	}

	var sweep SweepResult
	sweep.TotalCount = len(events)

	for i := range events {
		event := &events[i]

		if event.Case == nil || event.Case.User == nil {
			logger.CtxWarn(ctx, "event has no reachable owner, skipping",
				"event_id", event.ID)
			sweep.FailureCount++
			continue
		}

		result := s.SendCourtDateReminder(ctx, event.Case.User, event.Case, event)
		if !result.Success {
			logger.CtxWarn(ctx, "scheduled reminder failed",
				"event_id", event.ID, "error", result.Error)
			sweep.FailureCount++
			continue
		}

		sweep.SuccessCount++
		if err := s.events.MarkReminderSent(ctx, event.ID); err != nil {
			logger.CtxWarn(ctx, "could not mark reminder as sent",
				"event_id", event.ID, "error", err)
		}
	}

	logger.CtxInfo(ctx, "reminder sweep finished",
		"total", sweep.TotalCount, "succeeded", sweep.SuccessCount, "failed", sweep.FailureCount)
	return sweep
}

// wholeDaysUntil counts full days between now and t, rounding toward
// negative infinity so an overdue deadline reads as the days already passed.
func wholeDaysUntil(t, now time.Time) int {
	return int(math.Floor(t.Sub(now).Hours() / 24))
}

func (s *NotificationService) send(ctx context.Context, phone, message string) Result {
	res := s.transport.SendSMS(ctx, sms.NormalizePhone(phone), message)
	return Result{Success: res.Success, MessageID: res.MessageID, Error: res.Error}
}

// logActivity records the attempt in the audit feed. Logging failures are
// not allowed to mask the send outcome.
func (s *NotificationService) logActivity(ctx context.Context, user *models.User, kase *models.Case, notificationType string, success bool) {
	description := fmt.Sprintf("Sent %s notification", notificationType)
	activity := &models.Activity{
		UserID:       user.ID,
		ActivityType: models.ActivityTypeNotification,
		Description:  description,
		Points:       0,
	}
	if kase != nil {
		activity.Description += fmt.Sprintf(" for case #%s", kase.CaseNumber)
		caseID := kase.ID
		activity.CaseID = &caseID
	}
	if !success {
		activity.Description += " (failed)"
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		logger.CtxError(ctx, "failed to record notification activity",
			"user_id", user.ID, "error", err)
	}
}
