package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

// EventCriteria filters event listings.
type EventCriteria struct {
	UserID    *uuid.UUID
	CaseID    *uuid.UUID
	EventType string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, criteria EventCriteria) ([]models.Event, int64, error)

	// FindUpcomingCourtAppearances returns court-appearance events starting
	// in the half-open window (from, to], with case and owning user loaded.
	FindUpcomingCourtAppearances(ctx context.Context, from, to time.Time) ([]models.Event, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	base *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{base: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return translateError(dbFromContext(ctx, r.base).Create(event).Error)
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := dbFromContext(ctx, r.base).Preload("Case").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return translateError(dbFromContext(ctx, r.base).Save(event).Error)
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := dbFromContext(ctx, r.base).Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, criteria EventCriteria) ([]models.Event, int64, error) {
	db := dbFromContext(ctx, r.base).Model(&models.Event{})

	if criteria.UserID != nil {
		db = db.Where("user_id = ?", *criteria.UserID)
	}
	if criteria.CaseID != nil {
		db = db.Where("case_id = ?", *criteria.CaseID)
	}
	if criteria.EventType != "" {
		db = db.Where("event_type = ?", criteria.EventType)
	}
	if criteria.From != nil {
		db = db.Where("start_time >= ?", *criteria.From)
	}
	if criteria.To != nil {
		db = db.Where("start_time <= ?", *criteria.To)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := db.Order("start_time ASC").
		Limit(criteria.Limit).Offset(criteria.Offset).
		Find(&events).Error
	return events, total, err
}

func (r *eventRepository) FindUpcomingCourtAppearances(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	var events []models.Event
	err := dbFromContext(ctx, r.base).
		Preload("Case").
		Preload("Case.User").
		Where("event_type = ?", models.EventTypeCourtAppearance).
		Where("start_time > ? AND start_time <= ?", from, to).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	return translateError(dbFromContext(ctx, r.base).Model(&models.Event{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error)
}
