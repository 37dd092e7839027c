package dto

import "github.com/shopspring/decimal"

type CreateHarvestRequest struct {
	Name       string `json:"name"        validate:"required,min=2,max=120"`
	Year       int    `json:"year"        validate:"required,min=1900,max=2200"`
	ProducerID uint   `json:"producer_id" validate:"required"`
	AreaIDs    []uint `json:"area_ids"`
}

type UpdateHarvestRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=120"`
	Year    *int    `json:"year" validate:"omitempty,min=1900,max=2200"`
	AreaIDs *[]uint `json:"area_ids"`
}

type HarvestResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
	ProducerID uint   `json:"producer_id"`
	AreaIDs    []uint `json:"area_ids"`
}

// HarvestTotalAreaResponse reports square meters. TotalM2 from the
// plantings-deduped computation is an exact decimal sum of stored
// measurements; the direct variant reports the geodesic ST_Area sum.
type HarvestTotalAreaResponse struct {
	HarvestID uint            `json:"harvest_id"`
	TotalM2   decimal.Decimal `json:"total_m2"`
}

type HarvestDirectAreaResponse struct {
	HarvestID uint    `json:"harvest_id"`
	TotalM2   float64 `json:"total_m2"`
}
