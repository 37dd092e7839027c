package dto

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=80"`
	Description *string `json:"description"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=80"`
	Description *string `json:"description"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CreateVarietyRequest struct {
	Name      string `json:"name"       validate:"required,min=1,max=80"`
	ProductID uint   `json:"product_id" validate:"required"`
}

type UpdateVarietyRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=80"`
	ProductID *uint   `json:"product_id"`
}

type VarietyResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ProductID uint   `json:"product_id"`
}
