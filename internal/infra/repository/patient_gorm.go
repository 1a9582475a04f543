package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) CountAppointments(
	ctx context.Context,
	patientID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PatientGormRepository) CountInvoices(
	ctx context.Context,
	patientID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where(
			"appointment_id IN (?)",
			r.db.Model(&models.Appointment{}).
				Select("id").
				Where("patient_id = ?", patientID),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PatientGormRepository) Delete(
	ctx context.Context,
	patientID uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Patient{}, patientID).Error
}
