package models

import "github.com/google/uuid"

// Document statuses.
const (
	DocumentStatusDraft     = "draft"
	DocumentStatusFinal     = "final"
	DocumentStatusSubmitted = "submitted"
)

// Document is a drafted or filed legal document.
type Document struct {
	BaseModel
	Title        string    `gorm:"not null" json:"title"`
	DocumentType string    `json:"document_type"`
	Content      string    `gorm:"type:text" json:"content"`
	Version      int       `gorm:"not null;default:1" json:"version"`
	Status       string    `gorm:"not null;default:draft" json:"status"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Cases []Case `gorm:"many2many:case_documents;" json:"cases,omitempty"`
}

func (Document) TableName() string { return "documents" }
