// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gamereview/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Error Reporting

// errorSlot holds the code of the error response written for a request.
type errorSlot struct {
	code string
}

// WithErrorSlot returns a new context able to record the error code of the
// response. Outer middleware reads it back with [GetErrorCode].
func WithErrorSlot(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxkey.KeyErrorSlot, &errorSlot{})
}

// SetErrorCode records code in the slot installed by [WithErrorSlot].
// It is a no-op when no slot is present.
func SetErrorCode(ctx context.Context, code string) {
	if slot, ok := ctx.Value(ctxkey.KeyErrorSlot).(*errorSlot); ok {
		slot.code = code
	}
}

// GetErrorCode returns the recorded error code, or "" if none was written.
func GetErrorCode(ctx context.Context) string {
	if slot, ok := ctx.Value(ctxkey.KeyErrorSlot).(*errorSlot); ok {
		return slot.code
	}
	return ""
}
