package model

import "time"

// Planting is a crop/variety instance sown within a harvest, spread over one
// or more areas. Two plantings of the same harvest may share an area.
type Planting struct {
	ID        uint  `gorm:"primaryKey"`
	HarvestID uint  `gorm:"index;not null"`
	ProductID uint  `gorm:"index;not null"`
	VarietyID *uint `gorm:"index"`
	PlantedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Harvest *Harvest `gorm:"foreignKey:HarvestID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Variety *Variety `gorm:"foreignKey:VarietyID"`
	Areas   []Area   `gorm:"many2many:planting_areas"`
}
