package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientPortalUser is a client-side login for the read-only portal. It is a
// separate identity from User; a client may have several portal logins.
type ClientPortalUser struct {
	BaseModel
	Email        string     `gorm:"size:120;not null;index" json:"email"`
	PasswordHash string     `gorm:"size:256;not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	AccessToken  string     `gorm:"size:100" json:"-"`
	TokenExpiry  *time.Time `json:"-"`
	ClientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"client_id"`

	Client          *Client    `gorm:"constraint:OnDelete:CASCADE" json:"client,omitempty"`
	SharedDocuments []Document `gorm:"many2many:document_shares;" json:"shared_documents,omitempty"`
}

func (ClientPortalUser) TableName() string { return "client_portal_users" }
