// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Success bodies are keyed by the resource name ({"review": {...}}); every
// error body carries a stable code and a fixed message produced by the
// translation pipeline in [apperr.Translate].
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
	"github.com/taibuivan/gamereview/internal/platform/ctxutil"
	"github.com/taibuivan/gamereview/internal/platform/dberr"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// RouteNotFoundEnvelope echoes the status alongside the message.
type RouteNotFoundEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data under the given key.
func OK(writer http.ResponseWriter, key string, data any) {
	JSON(writer, http.StatusOK, map[string]any{key: data})
}

// Created writes a 201 Created response with data under the given key.
func Created(writer http.ResponseWriter, key string, data any) {
	JSON(writer, http.StatusCreated, map[string]any{key: data})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.Translate(err, dberr.Classifiers()...)
	ctxutil.SetErrorCode(request.Context(), appError.Code)

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Code:    appError.Code,
		Message: appError.Message,
		Details: appError.Details,
	})
}

// RouteNotFound writes the fixed 404 for paths outside the API surface.
func RouteNotFound(writer http.ResponseWriter, request *http.Request) {
	notFound := apperr.RouteNotFound()
	ctxutil.SetErrorCode(request.Context(), notFound.Code)
	JSON(writer, notFound.HTTPStatus, RouteNotFoundEnvelope{
		Status:  notFound.HTTPStatus,
		Message: notFound.Message,
	})
}
