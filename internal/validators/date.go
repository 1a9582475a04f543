package validators

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var ErrFutureDate = errors.New("date is in the future")

// ParseDateOfBirth parses a YYYY-MM-DD date and rejects future dates.
func ParseDateOfBirth(s string, now time.Time) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if d.After(now) {
		return time.Time{}, ErrFutureDate
	}
	return d, nil
}

// ParseDate parses a plain YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Age in whole years at the reference instant.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
