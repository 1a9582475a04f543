package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/config"
	"github.com/germanygsg/medrec/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(withStatementTimeout(cfg.DBUrl, cfg.StatementTimeout)), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Patient{},
		&models.Treatment{},
		&models.Appointment{},
		&models.AppointmentTreatment{},
		&models.Invoice{},
		&models.SequenceCounter{},
		&models.User{},
		&models.Session{},
		&models.Account{},
		&models.Verification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seedSequenceCounters(db)

	return db
}

// withStatementTimeout pushes the timeout down as a server runtime
// parameter so every statement on the pool is capped.
func withStatementTimeout(dsn string, timeout time.Duration) string {
	if timeout <= 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sstatement_timeout=%d", dsn, sep, timeout.Milliseconds())
}

// seedSequenceCounters backfills the current-year counters from numbers
// already issued, so databases that predate the counter table keep
// monotonic numbering.
func seedSequenceCounters(db *gorm.DB) {
	db.Exec(`
        INSERT INTO sequence_counters (prefix, year, last_value)
        SELECT 'PT', EXTRACT(YEAR FROM NOW())::int, MAX(split_part(record_number, '-', 3)::bigint)
        FROM patients
        WHERE record_number LIKE 'PT-' || EXTRACT(YEAR FROM NOW())::int || '-%'
        HAVING MAX(split_part(record_number, '-', 3)::bigint) IS NOT NULL
        ON CONFLICT (prefix, year) DO NOTHING
    `)

	db.Exec(`
        INSERT INTO sequence_counters (prefix, year, last_value)
        SELECT 'INV', EXTRACT(YEAR FROM NOW())::int, MAX(split_part(invoice_number, '-', 3)::bigint)
        FROM invoices
        WHERE invoice_number LIKE 'INV-' || EXTRACT(YEAR FROM NOW())::int || '-%'
        HAVING MAX(split_part(invoice_number, '-', 3)::bigint) IS NOT NULL
        ON CONFLICT (prefix, year) DO NOTHING
    `)
}
