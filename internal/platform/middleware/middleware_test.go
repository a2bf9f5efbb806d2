// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
	"github.com/taibuivan/gamereview/internal/platform/ctxutil"
	"github.com/taibuivan/gamereview/internal/platform/metrics"
	"github.com/taibuivan/gamereview/internal/platform/middleware"
	"github.com/taibuivan/gamereview/internal/platform/respond"
)

type originPolicy string

func (p originPolicy) OriginAllowed(origin string) bool {
	return strings.HasSuffix(origin, string(p))
}

/*
TestRequestID verifies client IDs are echoed and missing ones generated.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/api", nil)
	request.Header.Set("X-Request-ID", "client-supplied")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "client-supplied", seen)
	assert.Equal(t, "client-supplied", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
}

/*
TestPanicRecovery verifies a panicking handler yields the generic 500 envelope.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected")
	}))

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"Internal Server Error"}`, recorder.Body.String())
}

/*
TestCORS verifies headers are only set for allowed origins.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(originPolicy(".example.com"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantHeader string
		wantStatus int
	}{
		{"no_origin", http.MethodGet, "", "", http.StatusOK},
		{"allowed", http.MethodGet, "https://app.example.com", "https://app.example.com", http.StatusOK},
		{"rejected", http.MethodGet, "https://evil.test", "", http.StatusOK},
		{"preflight", http.MethodOptions, "https://app.example.com", "https://app.example.com", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, "/api/reviews", nil)
			if tt.origin != "" {
				request.Header.Set("Origin", tt.origin)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantHeader, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

/*
TestRateLimit verifies requests beyond the burst are rejected per client.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.0001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/api", nil)
		request.Header.Set("X-Real-IP", ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

/*
TestMetrics verifies requests are recorded under their route pattern and
error codes written by the handler are counted.
*/
func TestMetrics(t *testing.T) {
	collector := metrics.New("test_middleware")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.Metrics(collector))
	router.Get("/api/reviews/{review_id}", func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, apperr.TypeMismatch())
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reviews/banana", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(
		collector.RequestsTotal.WithLabelValues("GET", "/api/reviews/{review_id}", "400")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.ErrorsTotal.WithLabelValues("TYPE_MISMATCH")))
}

/*
TestRealIP verifies proxy headers take precedence over the remote address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", middleware.RealIP(request))
}
