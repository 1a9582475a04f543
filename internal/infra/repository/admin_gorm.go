package repository

import (
	"context"

	"gorm.io/gorm"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

// WipeAll deletes every clinical row inside one transaction, in
// dependency order so foreign keys are satisfied. Auth and audit tables
// are untouched.
func (r *AdminGormRepository) WipeAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM appointment_treatments",
			"DELETE FROM invoices",
			"DELETE FROM appointments",
			"DELETE FROM patients",
			"DELETE FROM treatments",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
