package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InvoiceNumber string `gorm:"size:20;uniqueIndex;not null" json:"invoice_number"`

	// One invoice per appointment, enforced by the unique index.
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"appointment"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	IssueDate time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"issue_date"`
	Status    string    `gorm:"size:20;default:'unpaid';index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
