package models

import (
	"github.com/google/uuid"
)

// User statuses.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

type User struct {
	BaseModel
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          string     `json:"phone"`
	Role           string     `gorm:"not null;default:legal_professional" json:"role"`
	Status         string     `gorm:"not null;default:active" json:"status"`
	EmailVerified  bool       `gorm:"default:false" json:"email_verified"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (User) TableName() string { return "users" }

// FullName joins first and last name for display and message templates.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
