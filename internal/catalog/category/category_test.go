package category_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamereview/internal/catalog/category"
)

func newRouter(t *testing.T) (http.Handler, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := category.NewService(category.NewPostgresRepository(mock), logger)

	router := chi.NewRouter()
	router.Route("/api/categories", category.NewHandler(service).RegisterRoutes)
	return router, mock
}

func TestListCategories(t *testing.T) {
	router, mock := newRouter(t)

	mock.ExpectQuery(`SELECT slug, description FROM categories ORDER BY slug ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"slug", "description"}).
			AddRow("dexterity", "Games involving physical skill").
			AddRow("euro game", "Abstact games that involve little luck"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"categories":[
		{"slug":"dexterity","description":"Games involving physical skill"},
		{"slug":"euro game","description":"Abstact games that involve little luck"}
	]}`, recorder.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories_StorageFailure(t *testing.T) {
	router, mock := newRouter(t)

	mock.ExpectQuery(`SELECT .* FROM categories`).
		WillReturnError(errors.New("connection refused"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"Internal Server Error"}`, recorder.Body.String())
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}
