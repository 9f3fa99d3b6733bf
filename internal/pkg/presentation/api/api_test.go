package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cafescout/api-cafes/internal/pkg/application/cafesearch"
	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/overpass"
	"github.com/cafescout/api-cafes/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatMissingCoordinatesAreRejected(t *testing.T) {
	is := is.New(t)
	svc := &cafesearch.CafeServiceMock{}

	res := performSearchRequest(svc, "/api/cafes")

	is.Equal(res.Code, http.StatusBadRequest)
	is.Equal(strings.TrimSpace(res.Body.String()), `{"error":"lat and lon query parameters are required"}`)
	is.Equal(len(svc.SearchCalls()), 0)
}

func TestThatAMissingLongitudeIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &cafesearch.CafeServiceMock{}

	res := performSearchRequest(svc, "/api/cafes?lat=59.3293")

	is.Equal(res.Code, http.StatusBadRequest)
	is.Equal(len(svc.SearchCalls()), 0)
}

func TestThatCafesAreReturnedAsJSON(t *testing.T) {
	is := is.New(t)
	svc := searchReturning(types.SearchResult{
		Cafes: []types.Cafe{
			{Name: "Kafé Hörnan", Lat: 59.3293, Lon: 18.0686, Source: "osm", OSMID: 42, OSMType: "node"},
		},
		Count:  1,
		Radius: 4000,
	}, nil)

	res := performSearchRequest(svc, "/api/cafes?lat=59.3293&lon=18.0686")

	is.Equal(res.Code, http.StatusOK)
	is.Equal(res.Header().Get("Content-Type"), "application/json")

	result := types.SearchResult{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &result))
	is.Equal(result.Count, 1)
	is.Equal(result.Cafes[0].Name, "Kafé Hörnan")

	is.Equal(len(svc.SearchCalls()), 1)
	is.Equal(svc.SearchCalls()[0].Lat, 59.3293)
	is.Equal(svc.SearchCalls()[0].Lon, 18.0686)
}

func TestThatTheRadiusParameterIsForwarded(t *testing.T) {
	is := is.New(t)
	svc := searchReturning(types.SearchResult{Cafes: []types.Cafe{}}, nil)

	performSearchRequest(svc, "/api/cafes?lat=59.3293&lon=18.0686&radius=2500")

	is.Equal(svc.SearchCalls()[0].Radius, 2500)
}

func TestThatAMalformedRadiusIsIgnored(t *testing.T) {
	is := is.New(t)
	svc := searchReturning(types.SearchResult{Cafes: []types.Cafe{}}, nil)

	performSearchRequest(svc, "/api/cafes?lat=59.3293&lon=18.0686&radius=verywide")

	is.Equal(svc.SearchCalls()[0].Radius, 0)
}

func TestThatUpstreamTimeoutsAreReportedAsGatewayTimeout(t *testing.T) {
	is := is.New(t)
	svc := searchReturning(types.SearchResult{}, fmt.Errorf("%w: context deadline exceeded", overpass.ErrTimeout))

	res := performSearchRequest(svc, "/api/cafes?lat=59.3293&lon=18.0686")

	is.Equal(res.Code, http.StatusGatewayTimeout)

	body := types.ErrorResponse{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &body))
	is.Equal(body.Error, "Overpass request failed")
	is.True(body.Details != "")
}

func TestThatOtherUpstreamFailuresAreReportedAsBadGateway(t *testing.T) {
	is := is.New(t)
	svc := searchReturning(types.SearchResult{}, fmt.Errorf("overpass responded with status code 500"))

	res := performSearchRequest(svc, "/api/cafes?lat=59.3293&lon=18.0686")

	is.Equal(res.Code, http.StatusBadGateway)

	body := types.ErrorResponse{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &body))
	is.Equal(body.Error, "Overpass request failed")
}

func TestThatResultsCanBeRequestedAsGeoJSON(t *testing.T) {
	is := is.New(t)
	svc := searchReturning(types.SearchResult{
		Cafes: []types.Cafe{
			{Name: "Kafé Hörnan", Lat: 59.3293, Lon: 18.0686, Source: "osm", OSMID: 42, OSMType: "node"},
		},
		Count:  1,
		Radius: 4000,
	}, nil)

	res := performSearchRequest(svc, "/api/cafes?lat=59.3293&lon=18.0686&format=geojson")

	is.Equal(res.Code, http.StatusOK)
	is.Equal(res.Header().Get("Content-Type"), "application/geo+json")

	fc := GeoJSONFeatureCollection{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &fc))
	is.Equal(fc.Type, "FeatureCollection")
	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].Geometry.Coordinates, [2]float64{18.0686, 59.3293})
}

func performSearchRequest(svc cafesearch.CafeService, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	res := httptest.NewRecorder()

	NewSearchCafesHandler(zerolog.Logger{}, svc).ServeHTTP(res, req)

	return res
}

func searchReturning(result types.SearchResult, err error) *cafesearch.CafeServiceMock {
	return &cafesearch.CafeServiceMock{
		SearchFunc: func(ctx context.Context, lat, lon float64, radius int) (types.SearchResult, error) {
			return result, err
		},
	}
}
