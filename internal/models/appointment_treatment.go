package models

import "github.com/shopspring/decimal"

// AppointmentTreatment links one appointment to one treatment. The
// composite key allows at most one association per pair. PriceAtTime is
// the catalog price captured when the association was created and is
// never rewritten afterwards.
type AppointmentTreatment struct {
	AppointmentID uint `gorm:"primaryKey" json:"appointment_id"`
	TreatmentID   uint `gorm:"primaryKey" json:"treatment_id"`

	Treatment Treatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"treatment"`

	PriceAtTime decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_time"`
	Notes       string          `gorm:"type:text" json:"notes"`
}
