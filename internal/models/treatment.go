package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Treatment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:256;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Catalog price. Appointments snapshot this value at association
	// time; editing it never changes historical billing.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
