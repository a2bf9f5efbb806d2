// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Accessors never classify storage failures themselves; they wrap them with
// context and let them travel to the translation pipeline, where the
// classifiers below recognise the SQLSTATE codes the API cares about.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
)

// Wrap annotates a storage error with the failed action, keeping the chain
// intact for [errors.As]. It returns nil for a nil error.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("postgres: %s: %w", action, err)
}

// IsNoRows reports whether err signals an empty single-row result.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// # Classifiers

// Classifiers returns the storage classifiers in pipeline order: the more
// specific SQLSTATE checks come before any application-level handling.
func Classifiers() []apperr.Classifier {
	return []apperr.Classifier{
		TypeMismatch,
		ForeignKeyViolation,
	}
}

// TypeMismatch claims SQLSTATE 22P02 (invalid_text_representation), raised when
// a bound value cannot be read as the column's type, and 22003
// (numeric_value_out_of_range), raised when it parses but does not fit.
func TypeMismatch(err error) (*apperr.AppError, bool) {
	switch code(err) {
	case pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
		return apperr.TypeMismatch().WithCause(err), true
	}
	return nil, false
}

// ForeignKeyViolation claims SQLSTATE 23503, raised when a write references a
// row that does not exist.
func ForeignKeyViolation(err error) (*apperr.AppError, bool) {
	if code(err) == pgerrcode.ForeignKeyViolation {
		return apperr.ReferenceNotFound().WithCause(err), true
	}
	return nil, false
}

// code extracts the SQLSTATE from err's chain, or "" for non-postgres errors.
func code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
