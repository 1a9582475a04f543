package patient

import "context"

type Repository interface {
	CountAppointments(
		ctx context.Context,
		patientID uint,
	) (int64, error)

	// CountInvoices counts invoices hanging off any of the patient's
	// appointments.
	CountInvoices(
		ctx context.Context,
		patientID uint,
	) (int64, error)

	Delete(
		ctx context.Context,
		patientID uint,
	) error
}
