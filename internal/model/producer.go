package model

import "time"

// Producer owns areas and harvests. Document is the fiscal identifier
// (CPF/CNPJ) and must be unique across producers.
type Producer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"index;not null"`
	Document  string `gorm:"uniqueIndex;not null"`
	City      *string
	State     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
