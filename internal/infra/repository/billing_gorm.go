package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/models"
)

type BillingGormRepository struct {
	db *gorm.DB
}

func NewBillingGormRepository(db *gorm.DB) *BillingGormRepository {
	return &BillingGormRepository{db: db}
}

func (r *BillingGormRepository) AppointmentExists(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BillingGormRepository) InvoiceExistsForAppointment(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BillingGormRepository) ListPriceSnapshots(
	ctx context.Context,
	appointmentID uint,
) ([]decimal.Decimal, error) {

	var snapshots []decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.AppointmentTreatment{}).
		Where("appointment_id = ?", appointmentID).
		Pluck("price_at_time", &snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *BillingGormRepository) CreateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	return r.db.WithContext(ctx).Create(inv).Error
}
