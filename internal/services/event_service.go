package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/pkg/apperrors"
)

type EventService struct {
	events repositories.EventRepository
	cases  repositories.CaseRepository
}

func NewEventService(events repositories.EventRepository, cases repositories.CaseRepository) *EventService {
	return &EventService{events: events, cases: cases}
}

func (s *EventService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateEventRequest) (*models.Event, error) {
	if req.CaseID != nil {
		kase, err := s.cases.GetByID(ctx, *req.CaseID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return nil, apperrors.CaseNotFound()
			}
			return nil, apperrors.DatabaseError(err)
		}
		if kase.UserID != userID {
			return nil, apperrors.CaseAccessDenied()
		}
	}

	reminderTime := req.ReminderTime
	if reminderTime == 0 {
		reminderTime = 24
	}

	event := &models.Event{
		Title:        req.Title,
		Description:  req.Description,
		EventType:    req.EventType,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		CaseID:       req.CaseID,
		UserID:       userID,
		Priority:     req.Priority,
		IsAllDay:     req.IsAllDay,
		ReminderTime: reminderTime,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return event, nil
}

func (s *EventService) GetOwned(ctx context.Context, userID, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.EventNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	if event.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not have access to this event")
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, userID, eventID uuid.UUID, req dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
		event.ReminderSent = false
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	if req.ReminderTime != nil {
		event.ReminderTime = *req.ReminderTime
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if _, err := s.GetOwned(ctx, userID, eventID); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *EventService) List(ctx context.Context, userID uuid.UUID, req dto.ListEventsRequest) ([]models.Event, int64, error) {
	criteria := repositories.EventCriteria{
		UserID:    &userID,
		EventType: req.EventType,
		From:      req.From,
		To:        req.To,
		Limit:     req.Limit(),
		Offset:    req.Offset(),
	}
	if req.CaseID != "" {
		caseID, err := uuid.Parse(req.CaseID)
		if err != nil {
			return nil, 0, apperrors.NewBadRequestError("Invalid case_id")
		}
		criteria.CaseID = &caseID
	}
	events, total, err := s.events.List(ctx, criteria)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return events, total, nil
}

// Upcoming returns the user's events for the next `days` days.
func (s *EventService) Upcoming(ctx context.Context, userID uuid.UUID, days int) ([]models.Event, error) {
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	to := now.Add(time.Duration(days) * 24 * time.Hour)

	events, _, err := s.events.List(ctx, repositories.EventCriteria{
		UserID: &userID,
		From:   &now,
		To:     &to,
		Limit:  100,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return events, nil
}
