package dto

import "github.com/google/uuid"

type CreateResearchRequest struct {
	Title   string     `json:"title" validate:"required"`
	Query   string     `json:"query" validate:"required"`
	Results string     `json:"results"`
	Source  string     `json:"source"`
	CaseID  *uuid.UUID `json:"case_id"`
}
