package model

import "time"

// IrrigationType is reference data; areas point at it by foreign key.
// Deletion is blocked while any area references the row.
type IrrigationType struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
