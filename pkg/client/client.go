package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/cafescout/api-cafes/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// CafeFinderClient looks up open cafes via a running api-cafes
// instance, for other services that want the filtered search results
// without talking to Overpass themselves.
type CafeFinderClient interface {
	FindCafesNear(ctx context.Context, lat, lon float64, radius int) (*types.SearchResult, error)
}

type cafeFinderClient struct {
	url string
}

var tracer = otel.Tracer("api-cafes-client")

func NewCafeFinderClient(cafesURL string) CafeFinderClient {
	cfc := &cafeFinderClient{
		url: cafesURL,
	}
	return cfc
}

func (cfc *cafeFinderClient) FindCafesNear(ctx context.Context, lat, lon float64, radius int) (*types.SearchResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "find-cafes-near")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	log.Info().Msgf("looking up cafes around %s,%s", formatDegrees(lat), formatDegrees(lon))

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	url := cfc.url + "/api/cafes?lat=" + formatDegrees(lat) + "&lon=" + formatDegrees(lon)
	if radius > 0 {
		url += "&radius=" + strconv.Itoa(radius)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve cafes: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("cafe search failed with status code %d", resp.StatusCode)
		return nil, err
	}

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	result := &types.SearchResult{}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return result, nil
}

func formatDegrees(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
