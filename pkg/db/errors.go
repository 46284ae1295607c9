package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
// When constraintName is provided the violated constraint must match it.
// SQLite reports no constraint names, so the filter only applies to Postgres.
func IsUniqueViolation(err error, constraintName string) bool {
	return matchViolation(err, pgUniqueViolation, constraintName, "duplicate key value", "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error, constraintName string) bool {
	return matchViolation(err, pgForeignKeyViolation, constraintName, "violates foreign key constraint", "FOREIGN KEY constraint failed")
}

// ViolationDetail returns the driver's description of the offending row, e.g.
// `Key (nome)=(Bebidas) already exists.` Falls back to the error text.
func ViolationDetail(err error) string {
	if err == nil {
		return ""
	}
	if _, _, detail, ok := pgInfo(err); ok && detail != "" {
		return detail
	}
	return err.Error()
}

func matchViolation(err error, sqlState, constraintName, pgMarker, sqliteMarker string) bool {
	if err == nil {
		return false
	}
	if code, constraint, _, ok := pgInfo(err); ok {
		if code != sqlState {
			return false
		}
		return constraintName == "" || constraint == constraintName
	}
	msg := err.Error()
	if strings.Contains(msg, sqliteMarker) {
		return true
	}
	if strings.Contains(msg, pgMarker) {
		return constraintName == "" || strings.Contains(msg, constraintName)
	}
	return false
}

func pgInfo(err error) (code, constraint, detail string, ok bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName, pgxErr.Detail, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, pqErr.Detail, true
	}
	return "", "", "", false
}
