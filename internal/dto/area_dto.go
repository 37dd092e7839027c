package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// GeoJSONPolygon is the external representation of a stored geometry:
// outer ring first, each ring closed, positions as [lon, lat, (elevation)].
type GeoJSONPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateAreaRequest struct {
	Name             string          `json:"name"               validate:"required,min=1,max=120"`
	ProducerID       uint            `json:"producer_id"        validate:"required"`
	SoilTypeID       uint            `json:"soil_type_id"       validate:"required"`
	IrrigationTypeID uint            `json:"irrigation_type_id" validate:"required"`
	AreaM2           float64         `json:"area_m2"            validate:"required,gt=0"`
	Polygon          json.RawMessage `json:"polygon"            validate:"required,polygon"`
	Color            *string         `json:"color"              validate:"omitempty,max=30"`
}

// UpdateAreaRequest carries a partial update. Pointer fields distinguish
// "not provided" from explicit zero/false — both must be honored.
type UpdateAreaRequest struct {
	Name             *string  `json:"name"               validate:"omitempty,min=1,max=120"`
	SoilTypeID       *uint    `json:"soil_type_id"`
	IrrigationTypeID *uint    `json:"irrigation_type_id"`
	AreaM2           *float64 `json:"area_m2"            validate:"omitempty,gte=0"`
	Active           *bool    `json:"active"`
}

type UpdateAreaStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ReferenceSummary is the nested {id, name} shape for soil/irrigation types.
type ReferenceSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AreaResponse struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	Polygon        *GeoJSONPolygon  `json:"polygon,omitempty"`
	Color          *string          `json:"color"`
	Active         bool             `json:"active"`
	AreaM2         decimal.Decimal  `json:"area_m2"`
	AreaHa         float64          `json:"area_ha"`
	ProducerID     uint             `json:"producer_id"`
	SoilType       ReferenceSummary `json:"soil_type"`
	IrrigationType ReferenceSummary `json:"irrigation_type"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
