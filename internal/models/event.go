package models

import (
	"time"

	"github.com/google/uuid"
)

// Event types with notification behavior attached to them.
const (
	EventTypeCourtAppearance = "Court Appearance"
	EventTypeMeeting         = "Meeting"
	EventTypeDeadline        = "Deadline"
	EventTypeReminder        = "Reminder"
)

// Event is a calendar entry, usually tied to a case.
type Event struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	EventType   string     `gorm:"not null;index" json:"event_type"`
	StartTime   time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location"`
	CaseID      *uuid.UUID `gorm:"type:uuid;index" json:"case_id,omitempty"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`

	Priority          int        `gorm:"not null;default:0" json:"priority"`
	IsAllDay          bool       `gorm:"not null;default:false" json:"is_all_day"`
	IsRecurring       bool       `gorm:"not null;default:false" json:"is_recurring"`
	RecurrencePattern string     `json:"recurrence_pattern"`
	RecurrenceEndDate *time.Time `json:"recurrence_end_date,omitempty"`
	ReminderSent      bool       `gorm:"not null;default:false" json:"reminder_sent"`
	ReminderTime      int        `gorm:"not null;default:24" json:"reminder_time"`
	ConflictStatus    string     `json:"conflict_status"`

	IsFlexible              bool       `gorm:"not null;default:false" json:"is_flexible"`
	BufferBefore            int        `gorm:"not null;default:0" json:"buffer_before"`
	BufferAfter             int        `gorm:"not null;default:0" json:"buffer_after"`
	RelatedEventID          *uuid.UUID `gorm:"type:uuid" json:"related_event_id,omitempty"`
	CourtReferenceNumber    string     `json:"court_reference_number"`
	Participants            string     `json:"participants"`
	TravelTimeMinutes       int        `gorm:"not null;default:0" json:"travel_time_minutes"`
	NotificationPreferences string     `json:"notification_preferences"`
	SynchronizationStatus   string     `json:"synchronization_status"`

	Case *Case `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Event) TableName() string { return "events" }
