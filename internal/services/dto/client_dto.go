package dto

type CreateClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	ClientType string `json:"client_type" validate:"omitempty,oneof=individual organization government"`
}

type UpdateClientRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	ClientType *string `json:"client_type" validate:"omitempty,oneof=individual organization government"`
}
