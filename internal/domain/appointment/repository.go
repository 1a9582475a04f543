package appointment

import (
	"context"

	"github.com/germanygsg/medrec/internal/models"
)

type Repository interface {
	// -------- Creation --------
	PatientExists(
		ctx context.Context,
		patientID uint,
	) (bool, error)

	ListTreatmentsByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Treatment, error)

	// CreateWithTreatments persists the appointment and its treatment
	// associations (price snapshots included) in one transaction.
	CreateWithTreatments(
		ctx context.Context,
		ap *models.Appointment,
		associations []models.AppointmentTreatment,
	) error

	// -------- Deletion guard --------
	CountInvoices(
		ctx context.Context,
		appointmentID uint,
	) (int64, error)

	// DeleteCascade removes the treatment associations and then the
	// appointment, in one transaction.
	DeleteCascade(
		ctx context.Context,
		appointmentID uint,
	) error

	GetByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)
}
