package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Area is a geo-referenced plot of land. The authoritative geometry lives in
// the "polygon" column — geometry(Polygon,4326), added by a schema patch
// because GORM cannot declare PostGIS columns — and is read/written
// exclusively through raw ST_* SQL in the area repository, so it is not
// declared here. AreaM2 is the producer-declared measurement; the geodesic
// surface of the polygon is computed on read via ST_Area(polygon::geography).
//
// Areas are never hard-deleted: Active is the only lifecycle switch.
type Area struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"index;not null"`
	Color            *string
	Active           bool            `gorm:"not null;default:true"`
	AreaM2           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ProducerID       uint            `gorm:"index;not null"`
	SoilTypeID       uint            `gorm:"index;not null"`
	IrrigationTypeID uint            `gorm:"index;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Producer       *Producer       `gorm:"foreignKey:ProducerID"`
	SoilType       *SoilType       `gorm:"foreignKey:SoilTypeID"`
	IrrigationType *IrrigationType `gorm:"foreignKey:IrrigationTypeID"`
}
