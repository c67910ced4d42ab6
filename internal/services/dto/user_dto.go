package dto

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin legal_professional paralegal"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}
