package dto

import "time"

type CreatePlantingRequest struct {
	HarvestID uint       `json:"harvest_id" validate:"required"`
	ProductID uint       `json:"product_id" validate:"required"`
	VarietyID *uint      `json:"variety_id"`
	PlantedAt *time.Time `json:"planted_at"`
	AreaIDs   []uint     `json:"area_ids"   validate:"required,min=1"`
}

type PlantingResponse struct {
	ID        uint       `json:"id"`
	HarvestID uint       `json:"harvest_id"`
	ProductID uint       `json:"product_id"`
	VarietyID *uint      `json:"variety_id"`
	PlantedAt *time.Time `json:"planted_at"`
	AreaIDs   []uint     `json:"area_ids"`
}
