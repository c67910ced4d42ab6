package dto

type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}
