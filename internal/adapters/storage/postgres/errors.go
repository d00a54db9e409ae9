package postgres

import (
	"database/sql"
	"errors"

	"pet-care-scheduler/internal/platform/apperr"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrAlreadyExists = apperr.New(apperr.KindConflict, "already exists")

// Códigos SQLSTATE que tratamos de forma especial.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
)

// classify etiqueta errores de pgx/database/sql. Lo que no reconoce pasa
// sin tocar; el servicio lo clasifica como internal.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrConnDone) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return apperr.Transient(op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return ErrAlreadyExists
		case codeSerializationFailure, codeDeadlockDetected, codeAdminShutdown, codeCannotConnectNow:
			return apperr.Transient(op, err)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apperr.Transient(op, err)
	}
	return apperr.Classify(op, err)
}
