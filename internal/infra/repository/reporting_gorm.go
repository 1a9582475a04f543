package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/domain/billing"
	"github.com/germanygsg/medrec/internal/dto"
	"github.com/germanygsg/medrec/internal/models"
)

// ReportingGormRepository serves the dashboard counters, the trailing
// 12-month rollups and the export read. Month buckets are computed in
// the database with TO_CHAR so grouping and ordering share one key.
type ReportingGormRepository struct {
	db *gorm.DB
}

func NewReportingGormRepository(db *gorm.DB) *ReportingGormRepository {
	return &ReportingGormRepository{db: db}
}

// --------------------------------------------------
// Current-month counters
// --------------------------------------------------

func (r *ReportingGormRepository) CountPatientsSince(
	ctx context.Context,
	since time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReportingGormRepository) CountAppointmentsSince(
	ctx context.Context,
	since time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReportingGormRepository) SumPaidRevenueSince(
	ctx context.Context,
	since time.Time,
) (decimal.Decimal, error) {

	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM invoices
        WHERE issue_date >= ? AND status = 'paid'
    `, since).Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// --------------------------------------------------
// Trailing 12-month rollups
// --------------------------------------------------

func (r *ReportingGormRepository) AppointmentsByMonth(
	ctx context.Context,
	since time.Time,
) ([]billing.MonthlyCount, error) {

	var rows []billing.MonthlyCount
	if err := r.db.WithContext(ctx).Raw(`
        SELECT TO_CHAR(appointment_date, 'YYYY-MM') AS month, COUNT(*) AS count
        FROM appointments
        WHERE appointment_date >= ?
        GROUP BY TO_CHAR(appointment_date, 'YYYY-MM')
        ORDER BY TO_CHAR(appointment_date, 'YYYY-MM')
    `, since).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportingGormRepository) RevenueByMonth(
	ctx context.Context,
	since time.Time,
) ([]billing.MonthlyRevenue, error) {

	var rows []billing.MonthlyRevenue
	if err := r.db.WithContext(ctx).Raw(`
        SELECT TO_CHAR(issue_date, 'YYYY-MM') AS month, COALESCE(SUM(total_amount), 0) AS revenue
        FROM invoices
        WHERE issue_date >= ? AND status = 'paid'
        GROUP BY TO_CHAR(issue_date, 'YYYY-MM')
        ORDER BY TO_CHAR(issue_date, 'YYYY-MM')
    `, since).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Export read
// --------------------------------------------------

func (r *ReportingGormRepository) ListInvoicesForExport(
	ctx context.Context,
) ([]dto.InvoiceExportRow, error) {

	var rows []dto.InvoiceExportRow
	if err := r.db.WithContext(ctx).Raw(`
        SELECT i.invoice_number,
               p.name AS patient_name,
               p.record_number AS patient_record,
               a.appointment_date,
               i.issue_date,
               i.total_amount,
               i.status
        FROM invoices i
        LEFT JOIN appointments a ON a.id = i.appointment_id
        LEFT JOIN patients p ON p.id = a.patient_id
        ORDER BY i.created_at DESC
    `).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
