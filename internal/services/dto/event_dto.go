package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description"`
	EventType    string     `json:"event_type" validate:"required"`
	StartTime    time.Time  `json:"start_time" validate:"required"`
	EndTime      *time.Time `json:"end_time"`
	Location     string     `json:"location"`
	CaseID       *uuid.UUID `json:"case_id"`
	Priority     int        `json:"priority"`
	IsAllDay     bool       `json:"is_all_day"`
	ReminderTime int        `json:"reminder_time"`
}

type UpdateEventRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	EventType    *string    `json:"event_type"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Location     *string    `json:"location"`
	Priority     *int       `json:"priority"`
	ReminderTime *int       `json:"reminder_time"`
}

type ListEventsRequest struct {
	Pagination
	CaseID    string     `form:"case_id" validate:"omitempty,uuid"`
	EventType string     `form:"event_type"`
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}
