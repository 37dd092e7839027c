package dto

// Shared request/response shapes for the soil-type and irrigation-type
// reference-data modules — both are {id, name, description?}.

type CreateReferenceRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=80"`
	Description *string `json:"description"`
}

type UpdateReferenceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=80"`
	Description *string `json:"description"`
}

type ReferenceResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
