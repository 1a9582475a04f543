package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentsByMonth(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportingGormRepository(db)

	since := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT TO_CHAR\(appointment_date, 'YYYY-MM'\) AS month`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"month", "count"}).
			AddRow("2025-04", int64(3)).
			AddRow("2025-05", int64(7)))

	rows, err := repo.AppointmentsByMonth(context.Background(), since)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2025-04", rows[0].Month)
	assert.Equal(t, int64(3), rows[0].Count)
	assert.Equal(t, "2025-05", rows[1].Month)
	assert.Equal(t, int64(7), rows[1].Count)
}

func TestRevenueByMonth(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportingGormRepository(db)

	since := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT TO_CHAR\(issue_date, 'YYYY-MM'\) AS month`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).
			AddRow("2025-05", "450.00"))

	rows, err := repo.RevenueByMonth(context.Background(), since)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "2025-05", rows[0].Month)
	assert.True(t, rows[0].Revenue.Equal(decimal.RequireFromString("450.00")))
}

func TestSumPaidRevenueSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportingGormRepository(db)

	since := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_amount\), 0\)`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1234.50"))

	total, err := repo.SumPaidRevenueSince(context.Background(), since)
	require.NoError(t, err)

	assert.True(t, total.Equal(decimal.RequireFromString("1234.50")))
}
