package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCaseRequest struct {
	CaseNumber   string     `json:"case_number" validate:"required"`
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description"`
	CourtLevel   string     `json:"court_level"`
	CaseType     string     `json:"case_type"`
	PracticeArea string     `json:"practice_area"`
	FilingDate   *time.Time `json:"filing_date"`
	CourtStage   string     `json:"court_stage"`
}

type UpdateCaseRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	CourtLevel    *string    `json:"court_level"`
	CaseType      *string    `json:"case_type"`
	PracticeArea  *string    `json:"practice_area"`
	CourtStage    *string    `json:"court_stage"`
	NextCourtDate *time.Time `json:"next_court_date"`
	Outcome       *string    `json:"outcome"`
}

type ChangeCaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open active pending closed archived"`
}

type ListCasesRequest struct {
	Pagination
	Status       string `form:"status"`
	CaseType     string `form:"case_type"`
	PracticeArea string `form:"practice_area"`
	CourtLevel   string `form:"court_level"`
	Search       string `form:"search"`
}

type AttachClientRequest struct {
	ClientID uuid.UUID `json:"client_id" validate:"required"`
}

type CreateMilestoneRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	OrderIndex  int        `json:"order_index"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateMilestoneRequest struct {
	Status      *string    `json:"status" validate:"omitempty,oneof=pending completed skipped"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}
