package models

// Client types.
const (
	ClientTypeIndividual   = "individual"
	ClientTypeOrganization = "organization"
	ClientTypeGovernment   = "government"
)

// Client is a party represented in one or more cases.
type Client struct {
	BaseModel
	Name            string `gorm:"not null" json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	ClientType      string `gorm:"not null;default:individual" json:"client_type"`
	HasPortalAccess bool   `gorm:"not null;default:false" json:"has_portal_access"`

	Cases []Case `gorm:"many2many:case_clients;" json:"cases,omitempty"`
}

func (Client) TableName() string { return "clients" }
