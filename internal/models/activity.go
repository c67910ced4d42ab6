package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Activity types.
const (
	ActivityTypeNotification = "notification"
	ActivityTypeCaseCreated  = "case_created"
	ActivityTypeCaseUpdated  = "case_updated"
	ActivityTypeStatusChange = "status_change"
)

// Activity is one row of the append-only audit feed.
type Activity struct {
	BaseModel
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ActivityType string         `gorm:"not null;index" json:"activity_type"`
	Description  string         `gorm:"not null" json:"description"`
	Points       int            `gorm:"not null;default:0" json:"points"`
	CaseID       *uuid.UUID     `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Data         datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
}

func (Activity) TableName() string { return "activities" }
