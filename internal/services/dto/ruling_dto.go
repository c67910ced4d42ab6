package dto

import "time"

type CreateRulingRequest struct {
	CaseNumber   string     `json:"case_number"`
	Title        string     `json:"title" validate:"required"`
	Court        string     `json:"court"`
	DateOfRuling *time.Time `json:"date_of_ruling"`
	Citation     string     `json:"citation"`
	URL          string     `json:"url"`
	Summary      string     `json:"summary"`
	FullText     string     `json:"full_text"`
	Outcome      string     `json:"outcome"`
	Category     string     `json:"category"`
	IsLandmark   bool       `json:"is_landmark"`
}

type UpdateRulingRequest struct {
	Title           *string    `json:"title"`
	Court           *string    `json:"court"`
	DateOfRuling    *time.Time `json:"date_of_ruling"`
	Citation        *string    `json:"citation"`
	Summary         *string    `json:"summary"`
	Outcome         *string    `json:"outcome"`
	Category        *string    `json:"category"`
	ImportanceScore *float64   `json:"importance_score"`
	IsLandmark      *bool      `json:"is_landmark"`
}

type ListRulingsRequest struct {
	Pagination
	Court    string `form:"court"`
	Category string `form:"category"`
	Landmark *bool  `form:"landmark"`
	Search   string `form:"search"`
}

type CreateAnnotationRequest struct {
	Text string `json:"text" validate:"required"`
}
