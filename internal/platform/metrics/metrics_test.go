// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	// Two instances with the same namespace must not panic on registration.
	first := New("gamereview")
	second := New("gamereview")

	first.RecordError("NOT_FOUND")

	assert.Equal(t, float64(1), testutil.ToFloat64(first.ErrorsTotal.WithLabelValues("NOT_FOUND")))
	assert.Equal(t, float64(0), testutil.ToFloat64(second.ErrorsTotal.WithLabelValues("NOT_FOUND")))
}

func TestRecordRequest(t *testing.T) {
	m := New("test_record_request")

	m.RecordRequest(http.MethodGet, "/api/reviews/{review_id}", http.StatusOK, 0.01)
	m.RecordRequest(http.MethodGet, "/api/reviews/{review_id}", http.StatusOK, 0.02)
	m.RecordRequest(http.MethodGet, "/api/reviews/{review_id}", http.StatusNotFound, 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/reviews/{review_id}", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/reviews/{review_id}", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestHandler(t *testing.T) {
	m := New("test_handler")
	m.RecordError("TYPE_MISMATCH")

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `test_handler_http_errors_total{code="TYPE_MISMATCH"} 1`)
}
