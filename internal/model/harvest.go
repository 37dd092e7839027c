package model

import "time"

// Harvest is a named growing season owned by a producer. It links areas
// directly (its own spatial footprint) and indirectly through plantings.
// An area's lifetime is independent of any harvest referencing it.
type Harvest struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Year       int    `gorm:"index;not null"`
	ProducerID uint   `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Producer  *Producer  `gorm:"foreignKey:ProducerID"`
	Areas     []Area     `gorm:"many2many:harvest_areas"`
	Plantings []Planting `gorm:"foreignKey:HarvestID"`
}
