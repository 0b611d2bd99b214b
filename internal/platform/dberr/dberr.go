// Copyright (c) 2026 Lingo Project. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
// It inspects pgx sentinel errors and PostgreSQL SQLSTATE codes so that
// storage-layer failures surface as typed [apperr.AppError] values:
//
//   - no rows            -> 404 NOT_FOUND
//   - unique violation   -> 409 CONFLICT
//   - FK violation       -> 422 UNPROCESSABLE
//   - anything else      -> 500 INTERNAL_ERROR (cause kept for logging)
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lingohq/lingo/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the failed operation and is preserved in the cause
// chain for server-side logging.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE mapping. The unique constraint at the storage layer is the
	// authority on duplicates: a race loser gets CONFLICT, never corruption.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			conflict := apperr.Conflict("Resource already exists")
			conflict.Cause = fmt.Errorf("%s: %w", action, err)
			return conflict
		case pgerrcode.ForeignKeyViolation:
			unprocessable := apperr.Unprocessable("Referenced resource does not exist")
			unprocessable.Cause = fmt.Errorf("%s: %w", action, err)
			return unprocessable
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsConflict reports whether err wraps a unique-constraint violation.
func IsConflict(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "CONFLICT"
}
