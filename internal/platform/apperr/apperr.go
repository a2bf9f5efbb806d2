// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the
review API.

It provides a rich error type that bridges the gap between low-level
Domain/Storage errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and a fixed, client-safe message.
  - Pipeline: An ordered chain of classifiers (see [Translate]) that maps any error to an AppError.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error raised by the service layer is an [AppError]. Storage errors travel
unclassified until they reach [Translate].
*/
package apperr

import (
	"errors"
	"net/http"
)

// # Messages

// Fixed client-facing messages. These strings are part of the public contract.
const (
	MsgTypeMismatch      = "Type of the provided value does not match the type expected in the related database field"
	MsgReferenceNotFound = "ID does not exist"
	MsgResourceNotFound  = "Resource not found"
	MsgRouteNotFound     = "The requested route does not exist"
	MsgInternal          = "Internal Server Error"
)

// AppError is the canonical error type for the API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "TYPE_MISMATCH").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches two AppErrors by code and status, so sentinel values declared
// with these constructors work with [errors.Is].
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && e.HTTPStatus == other.HTTPStatus && e.Message == other.Message
}

// WithCause returns a copy of e carrying cause for server-side logging.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] with a caller-supplied message.
//
// Example:
//
//	apperr.NotFound("The requested review does not exist")
func NotFound(msg string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    msg,
		HTTPStatus: http.StatusNotFound,
	}
}

// ResourceNotFound creates the generic 404 raised by existence checks.
func ResourceNotFound() *AppError {
	return NotFound(MsgResourceNotFound)
}

// ReferenceNotFound creates a 404 [AppError] for a write that referenced a
// foreign key target that does not exist.
func ReferenceNotFound() *AppError {
	return &AppError{
		Code:       "REFERENCE_NOT_FOUND",
		Message:    MsgReferenceNotFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// RouteNotFound creates the 404 returned for paths outside the API surface.
func RouteNotFound() *AppError {
	return &AppError{
		Code:       "ROUTE_NOT_FOUND",
		Message:    MsgRouteNotFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// BadRequest creates a 400 [AppError] for a malformed request shape.
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// TypeMismatch creates a 400 [AppError] for a value whose type does not fit
// the column it targets, such as a non-numeric identifier.
func TypeMismatch() *AppError {
	return &AppError{
		Code:       "TYPE_MISMATCH",
		Message:    MsgTypeMismatch,
		HTTPStatus: http.StatusBadRequest,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    MsgInternal,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
