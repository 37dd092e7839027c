package model

import "time"

// Variety is a cultivar of a product.
type Variety struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	ProductID uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
