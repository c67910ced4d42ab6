package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/sms"
)

type stubEventRepo struct {
	upcoming     []models.Event
	upcomingErr  error
	reminderSent []uuid.UUID
}

func (s *stubEventRepo) Create(context.Context, *models.Event) error { return nil }
func (s *stubEventRepo) GetByID(context.Context, uuid.UUID) (*models.Event, error) {
	return nil, repositories.ErrRecordNotFound
}
func (s *stubEventRepo) Update(context.Context, *models.Event) error { return nil }
func (s *stubEventRepo) Delete(context.Context, uuid.UUID) error     { return nil }
func (s *stubEventRepo) List(context.Context, repositories.EventCriteria) ([]models.Event, int64, error) {
	return nil, 0, nil
}
func (s *stubEventRepo) FindUpcomingCourtAppearances(context.Context, time.Time, time.Time) ([]models.Event, error) {
	return s.upcoming, s.upcomingErr
}
func (s *stubEventRepo) MarkReminderSent(_ context.Context, id uuid.UUID) error {
	s.reminderSent = append(s.reminderSent, id)
	return nil
}

type stubActivityRepo struct {
	created   []models.Activity
	createErr error
}

func (s *stubActivityRepo) Create(_ context.Context, a *models.Activity) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, *a)
	return nil
}
func (s *stubActivityRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]models.Activity, int64, error) {
	return nil, 0, nil
}

// failingTransport rejects every message.
type failingTransport struct{}

func (failingTransport) SendSMS(context.Context, string, string) sms.SendResult {
	return sms.SendResult{Success: false, Error: "provider unavailable"}
}

func newTestService(transport sms.Transport, events *stubEventRepo, activities *stubActivityRepo, now time.Time) *NotificationService {
	svc := NewNotificationService(transport, events, activities)
	svc.now = func() time.Time { return now }
	return svc
}

func testUser(phone string) *models.User {
	u := &models.User{Phone: phone, FirstName: "Jane", LastName: "Mwangi"}
	u.ID = uuid.New()
	return u
}

func testCase(number, title string) *models.Case {
	c := &models.Case{CaseNumber: number, Title: title}
	c.ID = uuid.New()
	return c
}

func TestSendCourtDateReminder(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	transport := sms.NewMockTransport()
	activities := &stubActivityRepo{}
	svc := newTestService(transport, &stubEventRepo{}, activities, now)

	user := testUser("0712345678")
	kase := testCase("TC-001", "State v. Example")
	event := &models.Event{
		EventType: models.EventTypeCourtAppearance,
		StartTime: now.Add(48 * time.Hour),
		Location:  "Nairobi High Court",
	}

	result := svc.SendCourtDateReminder(context.Background(), user, kase, event)

	require.True(t, result.Success)
	assert.Equal(t, "mock-sms-1", result.MessageID)

	sent := transport.SentMessages("+254712345678")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Message, "TC-001")
	assert.Contains(t, sent[0].Message, "Nairobi High Court")
	assert.Contains(t, sent[0].Message, "(2 days from now)")

	require.Len(t, activities.created, 1)
	activity := activities.created[0]
	assert.Equal(t, models.ActivityTypeNotification, activity.ActivityType)
	assert.Equal(t, "Sent court date reminder notification for case #TC-001", activity.Description)
	assert.Zero(t, activity.Points)
	require.NotNil(t, activity.CaseID)
	assert.Equal(t, kase.ID, *activity.CaseID)
}

func TestSendDocumentDeadlineReminderOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	transport := sms.NewMockTransport()
	svc := newTestService(transport, &stubEventRepo{}, &stubActivityRepo{}, now)

	document := &models.Document{Title: "Submissions"}
	document.ID = uuid.New()

	// 36 hours overdue: one and a half days past, which rounds down to -2,
	// not toward zero.
	result := svc.SendDocumentDeadlineReminder(context.Background(),
		testUser("0712345678"), testCase("TC-005", "Judicial Review"), document,
		now.Add(-36*time.Hour))

	require.True(t, result.Success)
	sent := transport.SentMessages("")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Message, "Submissions")
	assert.Contains(t, sent[0].Message, "(-2 days from now)")
}

func TestWholeDaysUntil(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset time.Duration
		want   int
	}{
		{"two days ahead", 48 * time.Hour, 2},
		{"day and a half ahead", 36 * time.Hour, 1},
		{"same moment", 0, 0},
		{"twelve hours past", -12 * time.Hour, -1},
		{"day and a half past", -36 * time.Hour, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wholeDaysUntil(now.Add(tt.offset), now))
		})
	}
}

func TestSendCourtDateReminderNoPhone(t *testing.T) {
	t.Parallel()

	transport := sms.NewMockTransport()
	activities := &stubActivityRepo{}
	svc := newTestService(transport, &stubEventRepo{}, activities, time.Now())

	result := svc.SendCourtDateReminder(context.Background(),
		testUser(""), testCase("TC-002", "Probate"), &models.Event{StartTime: time.Now().Add(30 * time.Hour)})

	assert.False(t, result.Success)
	assert.Equal(t, "User has no phone number", result.Error)
	assert.Empty(t, transport.SentMessages(""), "transport must not be called without a phone")
	assert.Empty(t, activities.created, "the guard fires before any send attempt")
}

func TestSendCaseStatusUpdateEchoesStatus(t *testing.T) {
	t.Parallel()

	transport := sms.NewMockTransport()
	svc := newTestService(transport, &stubEventRepo{}, &stubActivityRepo{}, time.Now())

	result := svc.SendCaseStatusUpdate(context.Background(),
		testUser("0700000001"), testCase("TC-003", "Land Dispute"), "Adjourned Sine Die")

	require.True(t, result.Success)
	sent := transport.SentMessages("")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Message, "Adjourned Sine Die")
}

func TestSendFailureStillRecordsActivity(t *testing.T) {
	t.Parallel()

	activities := &stubActivityRepo{}
	svc := newTestService(failingTransport{}, &stubEventRepo{}, activities, time.Now())

	result := svc.SendCaseStatusUpdate(context.Background(),
		testUser("0700000002"), testCase("TC-004", "Appeal"), "closed")

	assert.False(t, result.Success)
	assert.Equal(t, "provider unavailable", result.Error)
	require.Len(t, activities.created, 1)
	assert.Contains(t, activities.created[0].Description, "(failed)")
}

func TestSendPaymentConfirmationWording(t *testing.T) {
	t.Parallel()

	transport := sms.NewMockTransport()
	svc := newTestService(transport, &stubEventRepo{}, &stubActivityRepo{}, time.Now())
	user := testUser("0700000003")

	svc.SendPaymentConfirmation(context.Background(), user, PaymentDetails{
		Amount: 2500, PaymentType: "subscription", TransactionID: "TXN-100",
	})
	svc.SendPaymentConfirmation(context.Background(), user, PaymentDetails{
		Amount: 500, PaymentType: "tokens", TokensPurchased: 50, TransactionID: "TXN-101",
	})

	sent := transport.SentMessages("")
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Message, "subscription payment of KSh 2500.00")
	assert.Contains(t, sent[0].Message, "TXN-100")
	assert.Contains(t, sent[1].Message, "KSh 500.00 for 50 tokens")
	assert.Contains(t, sent[1].Message, "TXN-101")
}

func TestSendScheduledRemindersEmptyWindow(t *testing.T) {
	t.Parallel()

	svc := newTestService(sms.NewMockTransport(), &stubEventRepo{}, &stubActivityRepo{}, time.Now())

	sweep := svc.SendScheduledReminders(context.Background())
	assert.Zero(t, sweep.SuccessCount)
	assert.Zero(t, sweep.FailureCount)
	assert.Zero(t, sweep.TotalCount)
}

func TestSendScheduledRemindersIsolatesFailures(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	withPhone := testUser("0711111111")
	withoutPhone := testUser("")

	okCase := testCase("TC-010", "Reachable")
	okCase.User = withPhone
	badCase := testCase("TC-011", "No phone")
	badCase.User = withoutPhone

	makeEvent := func(c *models.Case) models.Event {
		e := models.Event{
			EventType: models.EventTypeCourtAppearance,
			StartTime: now.Add(30 * time.Hour),
			Location:  "Milimani Law Courts",
			Case:      c,
		}
		e.ID = uuid.New()
		return e
	}

	orphan := makeEvent(nil)

	events := &stubEventRepo{upcoming: []models.Event{
		makeEvent(okCase), makeEvent(badCase), orphan, makeEvent(okCase),
	}}
	transport := sms.NewMockTransport()
	svc := newTestService(transport, events, &stubActivityRepo{}, now)

	sweep := svc.SendScheduledReminders(context.Background())

	assert.Equal(t, 4, sweep.TotalCount)
	assert.Equal(t, 2, sweep.SuccessCount)
	assert.Equal(t, 2, sweep.FailureCount)
	assert.Len(t, transport.SentMessages(""), 2)
	assert.Len(t, events.reminderSent, 2, "only successful sends mark the event")
}

func TestSendScheduledRemindersQueryError(t *testing.T) {
	t.Parallel()

	events := &stubEventRepo{upcomingErr: errors.New("db down")}
	svc := newTestService(sms.NewMockTransport(), events, &stubActivityRepo{}, time.Now())

	sweep := svc.SendScheduledReminders(context.Background())
	assert.Zero(t, sweep.TotalCount)
}
