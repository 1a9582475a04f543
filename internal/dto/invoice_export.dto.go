package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceExportRow is the flat shape the external spreadsheet-export
// tool consumes: every invoice joined with its appointment and patient.
type InvoiceExportRow struct {
	InvoiceNumber   string          `json:"invoice_number"`
	PatientName     string          `json:"patient_name"`
	PatientRecord   string          `json:"patient_record"`
	AppointmentDate time.Time       `json:"appointment_date"`
	IssueDate       time.Time       `json:"issue_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
}
