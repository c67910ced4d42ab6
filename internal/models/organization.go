package models

import "github.com/google/uuid"

// Organization groups users of one firm or chamber.
type Organization struct {
	BaseModel
	Name        string    `gorm:"not null;uniqueIndex" json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`

	Owner   *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []User `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
}

func (Organization) TableName() string { return "organizations" }
