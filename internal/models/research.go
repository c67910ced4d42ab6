package models

import "github.com/google/uuid"

// LegalResearch is a saved research query and its results.
type LegalResearch struct {
	BaseModel
	Title   string     `gorm:"not null" json:"title"`
	Query   string     `gorm:"type:text;not null" json:"query"`
	Results string     `gorm:"type:text" json:"results"`
	Source  string     `json:"source"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CaseID  *uuid.UUID `gorm:"type:uuid;index" json:"case_id,omitempty"`

	Case *Case `gorm:"foreignKey:CaseID" json:"case,omitempty"`
}

func (LegalResearch) TableName() string { return "legal_research" }
