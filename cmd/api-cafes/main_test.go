package main

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cafescout/api-cafes/internal/pkg/application/cafesearch"
	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/overpass"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestSetup(t *testing.T) {
	is := is.New(t)
	r := setupTestApp()
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatSearchReturnsMatchingCafes(t *testing.T) {
	is := is.New(t)
	lat, lon := 59.3293, 18.0686
	r := setupTestApp(overpass.Element{
		Type: "node", ID: 42, Lat: &lat, Lon: &lon,
		Tags: map[string]string{"name": "Espresso House"},
	})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/cafes?lat=59.3293&lon=18.0686", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, "{\"cafes\":[{\"name\":\"Espresso House\",\"lat\":59.3293,\"lon\":18.0686,\"source\":\"osm\",\"osm_id\":42,\"osm_type\":\"node\"}],\"count\":1,\"radius\":15000}")
}

func TestThatSearchWithoutCoordinatesReturns400(t *testing.T) {
	is := is.New(t)
	r := setupTestApp()
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/cafes", nil)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(body, "{\"error\":\"lat and lon query parameters are required\"}")
}

func TestThatIndexPageIsServed(t *testing.T) {
	is := is.New(t)
	r := setupTestApp()
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "text/html; charset=utf-8")
	is.True(strings.Contains(body, "data-api=\"/api/cafes\""))
}

func setupTestApp(elements ...overpass.Element) http.Handler {
	cfg := cafesearch.DefaultConfiguration()
	cfg.Search.ExpansionDelay = 0

	svc := cafesearch.New(&overpass.ClientMock{
		QueryFunc: func(ctx context.Context, query string) ([]overpass.Element, error) {
			return elements, nil
		},
	}, cfg)

	return createAppAndSetupRouter(zerolog.Logger{}, "test", svc)
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := ioutil.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}
