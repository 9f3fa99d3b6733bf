package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cafescout/api-cafes/internal/pkg/application/cafesearch"
	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/overpass"
	"github.com/cafescout/api-cafes/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-cafes/api")

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, svc cafesearch.CafeService) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Get("/api/cafes", NewSearchCafesHandler(log, svc))

	return router
}

func NewSearchCafesHandler(log zerolog.Logger, svc cafesearch.CafeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "search-cafes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
		if latErr != nil || lonErr != nil {
			requestLogger.Debug().Msg("rejecting request with missing or malformed coordinates")
			writeJSON(w, http.StatusBadRequest, types.ErrorResponse{
				Error: "lat and lon query parameters are required",
			})
			return
		}

		// A missing, malformed or non-positive radius falls back to the
		// configured default inside the service.
		radius, _ := strconv.Atoi(r.URL.Query().Get("radius"))

		result, err := svc.Search(ctx, lat, lon, radius)
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, overpass.ErrTimeout) {
				status = http.StatusGatewayTimeout
			}

			requestLogger.Error().Err(err).Msg("overpass lookup failed")
			writeJSON(w, status, types.ErrorResponse{
				Error:   "Overpass request failed",
				Details: err.Error(),
			})
			return
		}

		requestLogger.Info().Msgf("returning %d cafes within %d meters", result.Count, result.Radius)

		if wantsGeoJSON(r) {
			writeGeoJSON(w, http.StatusOK, NewFeatureCollectionFromCafes(result.Cafes))
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func wantsGeoJSON(r *http.Request) bool {
	return r.URL.Query().Get("format") == "geojson" || r.Header.Get("Accept") == "application/geo+json"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	write(w, "application/json", status, body)
}

func writeGeoJSON(w http.ResponseWriter, status int, body any) {
	write(w, "application/geo+json", status, body)
}

func write(w http.ResponseWriter, contentType string, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(b)
}
