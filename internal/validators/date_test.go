package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOfBirth(t *testing.T) {
	now := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	d, err := ParseDateOfBirth("1990-03-15", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDateOfBirthRejectsFuture(t *testing.T) {
	now := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	_, err := ParseDateOfBirth("2026-01-01", now)
	assert.ErrorIs(t, err, ErrFutureDate)
}

func TestParseDateOfBirthRejectsGarbage(t *testing.T) {
	now := time.Now()

	for _, s := range []string{"", "15/03/1990", "1990-3-15", "not a date"} {
		_, err := ParseDateOfBirth(s, now)
		assert.Error(t, err, s)
	}
}

func TestAge(t *testing.T) {
	dob := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Day before the birthday.
	now := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 34, Age(dob, now))

	// On the birthday.
	now = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 35, Age(dob, now))

	// Newborn.
	assert.Equal(t, 0, Age(now, now))
}
