package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Creation
// --------------------------------------------------

func (r *AppointmentGormRepository) PatientExists(
	ctx context.Context,
	patientID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", patientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) ListTreatmentsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Treatment, error) {

	var treatments []models.Treatment
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *AppointmentGormRepository) CreateWithTreatments(
	ctx context.Context,
	ap *models.Appointment,
	associations []models.AppointmentTreatment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		if len(associations) == 0 {
			return nil
		}

		for i := range associations {
			associations[i].AppointmentID = ap.ID
		}

		return tx.Create(&associations).Error
	})
}

// --------------------------------------------------
// Deletion
// --------------------------------------------------

func (r *AppointmentGormRepository) CountInvoices(
	ctx context.Context,
	appointmentID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) DeleteCascade(
	ctx context.Context,
	appointmentID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", appointmentID).
			Delete(&models.AppointmentTreatment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Appointment{}, appointmentID).Error
	})
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}
