package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientCountAppointments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientGormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WithArgs(uint(12)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountAppointments(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientCountInvoicesViaSubquery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientGormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE appointment_id IN \(SELECT "id" FROM "appointments"`).
		WithArgs(uint(12)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	count, err := repo.CountInvoices(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
