package model

import "time"

// Product is a crop product (soy, corn, wheat...). Varieties refine it.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
