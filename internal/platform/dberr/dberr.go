// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/herbario/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Mapping
//
//   - pgx.ErrNoRows: 404 NOT_FOUND
//   - 23505 unique_violation: 409, CLASIFICACION_EN_CURSO for a known constraint, else CONFLICT
//   - 23503 foreign_key_violation: 422 UNPROCESSABLE
//   - 23514 check_violation: 400 VALIDATION_ERROR
//   - anything else: 500 INTERNAL_ERROR carrying the cause
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			return conflictFor(pgError.ConstraintName).WithCause(err)
		case pgerrcode.ForeignKeyViolation:
			return apperr.Unprocessable("Referenced record does not exist").WithCause(err)
		case pgerrcode.CheckViolation:
			return apperr.ValidationError("Value violates a table constraint").WithCause(err)
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// namedConflicts maps unique constraints to their domain error.
var namedConflicts = map[string]func() *apperr.AppError{
	"uq_clasificacion_en_curso": apperr.ClasificacionEnCurso,
}

func conflictFor(constraint string) *apperr.AppError {
	if build, ok := namedConflicts[constraint]; ok {
		return build()
	}
	return apperr.Conflict("Record already exists")
}
