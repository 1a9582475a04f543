package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Prefixes for the two human-readable identifier families.
const (
	PrefixPatient = "PT"
	PrefixInvoice = "INV"
)

// Format renders the canonical identifier: PREFIX-YYYY-NNNNN, sequence
// zero-padded to five digits so lexicographic order matches issue order
// within a year.
func Format(prefix string, year int, n int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, n)
}

// Parse splits an identifier back into its parts.
func Parse(id string) (prefix string, year int, n int64, err error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("malformed identifier %q", id)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("malformed year in %q", id)
	}

	n, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("malformed sequence in %q", id)
	}

	return parts[0], year, n, nil
}

// Generator issues the next identifier for a prefix, scoped to the
// current calendar year. The per-(prefix, year) counter row is bumped
// in a single statement, so two concurrent creations get distinct
// numbers without application-side locking.
type Generator struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{db: db, now: time.Now}
}

func (g *Generator) Next(ctx context.Context, prefix string) (string, error) {
	year := g.now().Year()

	var last int64
	err := g.db.WithContext(ctx).Raw(`
        INSERT INTO sequence_counters (prefix, year, last_value)
        VALUES (?, ?, 1)
        ON CONFLICT (prefix, year)
        DO UPDATE SET last_value = sequence_counters.last_value + 1
        RETURNING last_value
    `, prefix, year).Scan(&last).Error
	if err != nil {
		return "", err
	}

	return Format(prefix, year, last), nil
}
