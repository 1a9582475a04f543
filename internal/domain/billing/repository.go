package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/germanygsg/medrec/internal/models"
)

type Repository interface {
	// -------- Invoice generation --------
	InvoiceExistsForAppointment(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	AppointmentExists(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	ListPriceSnapshots(
		ctx context.Context,
		appointmentID uint,
	) ([]decimal.Decimal, error)

	CreateInvoice(
		ctx context.Context,
		inv *models.Invoice,
	) error
}
