package models

import (
	"time"

	"github.com/google/uuid"
)

// Case statuses.
const (
	CaseStatusOpen     = "open"
	CaseStatusActive   = "active"
	CaseStatusPending  = "pending"
	CaseStatusClosed   = "closed"
	CaseStatusArchived = "archived"
)

// ValidCaseStatuses lists every status a case may hold.
var ValidCaseStatuses = []string{
	CaseStatusOpen, CaseStatusActive, CaseStatusPending,
	CaseStatusClosed, CaseStatusArchived,
}

// IsValidCaseStatus reports whether s is a known case status.
func IsValidCaseStatus(s string) bool {
	for _, v := range ValidCaseStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Case is a legal matter tracked for a user.
type Case struct {
	BaseModel
	CaseNumber    string     `gorm:"uniqueIndex;not null" json:"case_number"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	CourtLevel    string     `json:"court_level"`
	CaseType      string     `json:"case_type"`
	PracticeArea  string     `json:"practice_area"`
	FilingDate    *time.Time `json:"filing_date,omitempty"`
	Status        string     `gorm:"not null;default:open" json:"status"`
	CourtStage    string     `json:"court_stage"`
	NextCourtDate *time.Time `json:"next_court_date,omitempty"`
	Outcome       string     `json:"outcome"`
	ClosingDate   *time.Time `json:"closing_date,omitempty"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`

	User       *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clients    []Client        `gorm:"many2many:case_clients;" json:"clients,omitempty"`
	Events     []Event         `gorm:"foreignKey:CaseID" json:"events,omitempty"`
	Milestones []CaseMilestone `gorm:"foreignKey:CaseID" json:"milestones,omitempty"`
	Documents  []Document      `gorm:"many2many:case_documents;" json:"documents,omitempty"`
}

func (Case) TableName() string { return "cases" }

// Milestone statuses.
const (
	MilestoneStatusPending   = "pending"
	MilestoneStatusCompleted = "completed"
	MilestoneStatusSkipped   = "skipped"
)

// CaseMilestone is one step in a case's procedural timeline.
type CaseMilestone struct {
	BaseModel
	CaseID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"case_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	OrderIndex  int        `gorm:"not null;default:0" json:"order_index"`
	Status      string     `gorm:"not null;default:pending" json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (CaseMilestone) TableName() string { return "case_milestones" }
