// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gamereview/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_ErrorSlot verifies that codes written downstream are visible upstream.
*/
func TestContext_ErrorSlot(t *testing.T) {
	// Without a slot the setter is a no-op
	bare := context.Background()
	ctxutil.SetErrorCode(bare, "NOT_FOUND")
	assert.Empty(t, ctxutil.GetErrorCode(bare))

	ctx := ctxutil.WithErrorSlot(context.Background())
	child := context.WithValue(ctx, struct{}{}, "x")

	ctxutil.SetErrorCode(child, "TYPE_MISMATCH")
	assert.Equal(t, "TYPE_MISMATCH", ctxutil.GetErrorCode(ctx))
}
