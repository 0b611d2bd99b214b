// Copyright (c) 2026 Lingo Project. All rights reserved.

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingohq/lingo/internal/platform/apperr"
	"github.com/lingohq/lingo/internal/platform/dberr"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "get_translation")

	require.Error(t, err)
	assert.True(t, errors.Is(err, dberr.ErrNotFound))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

func TestWrap_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "translations_key_locale_unique",
	}

	err := dberr.Wrap(pgErr, "create_translation")

	require.Error(t, err)
	assert.True(t, dberr.IsConflict(err))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)

	// The action and the raw pg error stay in the cause chain for logging.
	assert.ErrorContains(t, ae.Cause, "create_translation")
	assert.True(t, errors.Is(ae.Cause, pgErr))
}

func TestWrap_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}

	err := dberr.Wrap(pgErr, "create_translation")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNPROCESSABLE", ae.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, ae.HTTPStatus)
}

func TestWrap_UnknownError(t *testing.T) {
	cause := errors.New("connection reset by peer")

	err := dberr.Wrap(cause, "list_translations")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.True(t, errors.Is(ae.Cause, cause))
	assert.False(t, dberr.IsConflict(err))
}
