package dto

type CreateProducerRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=120"`
	Document string  `json:"document" validate:"required,min=11,max=18"`
	City     *string `json:"city"`
	State    *string `json:"state"    validate:"omitempty,len=2"`
}

type UpdateProducerRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=120"`
	City  *string `json:"city"`
	State *string `json:"state" validate:"omitempty,len=2"`
}

type ProducerResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Document string  `json:"document"`
	City     *string `json:"city"`
	State    *string `json:"state"`
}
