package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// BusinessError is a domain conflict the caller can act on: deletion
// blocked by dependents, duplicate invoice, invalid state. It carries a
// stable code and a remediation message instead of a database error.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation, the backstop for races the application-level checks miss.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
