package frontend

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatTheApplicationShellIsServed(t *testing.T) {
	is := is.New(t)
	router := RegisterHandlers(zerolog.Logger{}, chi.NewRouter(), t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusOK)
	is.Equal(res.Header().Get("Content-Type"), "text/html; charset=utf-8")
	is.True(strings.Contains(res.Body.String(), `data-api="/api/cafes"`))
	is.True(strings.Contains(res.Body.String(), `data-radius="4000"`))
}

func TestThatMissingStaticAssetsReturnNotFound(t *testing.T) {
	is := is.New(t)
	router := RegisterHandlers(zerolog.Logger{}, chi.NewRouter(), t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/static/js/app.js", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusNotFound)
}

func TestThatBareStaticRequestsAreRedirected(t *testing.T) {
	is := is.New(t)
	router := RegisterHandlers(zerolog.Logger{}, chi.NewRouter(), t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/static", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusMovedPermanently)
}
