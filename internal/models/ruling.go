package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ruling is a court decision kept as reference material.
type Ruling struct {
	BaseModel
	CaseNumber      string     `gorm:"index" json:"case_number"`
	Title           string     `gorm:"not null" json:"title"`
	Court           string     `gorm:"index" json:"court"`
	DateOfRuling    *time.Time `json:"date_of_ruling,omitempty"`
	Citation        string     `json:"citation"`
	URL             string     `json:"url"`
	Summary         string     `gorm:"type:text" json:"summary"`
	FullText        string     `gorm:"type:text" json:"full_text"`
	Outcome         string     `json:"outcome"`
	Category        string     `gorm:"index" json:"category"`
	ImportanceScore float64    `gorm:"not null;default:0" json:"importance_score"`
	IsLandmark      bool       `gorm:"not null;default:false;index" json:"is_landmark"`
	UserID          *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`

	Judges      []Judge            `gorm:"many2many:ruling_judges;" json:"judges,omitempty"`
	Tags        []Tag              `gorm:"many2many:ruling_tags;" json:"tags,omitempty"`
	References  []RulingReference  `gorm:"foreignKey:RulingID" json:"references,omitempty"`
	Annotations []RulingAnnotation `gorm:"foreignKey:RulingID" json:"annotations,omitempty"`
	Analyses    []RulingAnalysis   `gorm:"foreignKey:RulingID" json:"analyses,omitempty"`
}

func (Ruling) TableName() string { return "rulings" }

// Judge is a jurist referenced by rulings.
type Judge struct {
	BaseModel
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Court string `json:"court"`
}

func (Judge) TableName() string { return "judges" }

// Tag labels rulings; tags form a hierarchy through ParentID.
type Tag struct {
	BaseModel
	Name     string     `gorm:"uniqueIndex;not null" json:"name"`
	ParentID *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`

	Parent *Tag `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

func (Tag) TableName() string { return "tags" }

// RulingReference is a citation from one ruling to another authority.
type RulingReference struct {
	BaseModel
	RulingID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"ruling_id"`
	CitedRulingID *uuid.UUID `gorm:"type:uuid" json:"cited_ruling_id,omitempty"`
	CitationText  string     `json:"citation_text"`
}

func (RulingReference) TableName() string { return "ruling_references" }

// RulingAnnotation is a user note pinned to a ruling.
type RulingAnnotation struct {
	BaseModel
	RulingID uuid.UUID `gorm:"type:uuid;not null;index" json:"ruling_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
}

func (RulingAnnotation) TableName() string { return "ruling_annotations" }

// RulingAnalysis stores a structured analysis result for a ruling.
type RulingAnalysis struct {
	BaseModel
	RulingID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"ruling_id"`
	AnalysisType string         `gorm:"not null" json:"analysis_type"`
	Result       datatypes.JSON `gorm:"type:jsonb" json:"result"`
}

func (RulingAnalysis) TableName() string { return "ruling_analyses" }
