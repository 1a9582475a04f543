package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestWipeAllDeletesInDependencyOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM appointment_treatments`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM invoices`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM appointments`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM patients`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM treatments`).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	err := repo.WipeAll(context.Background())
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWipeAllRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM appointment_treatments`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM invoices`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.WipeAll(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
