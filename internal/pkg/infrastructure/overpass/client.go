package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

const (
	// DefaultURL points to the public Overpass API instance.
	DefaultURL = "https://overpass-api.de/api/interpreter"

	// DefaultRetryDelay is how long the client waits before its single
	// retry attempt.
	DefaultRetryDelay = 2 * time.Second

	userAgent  = "CafeScout/1.0 (+https://github.com/cafescout/api-cafes)"
	maxRetries = 1
)

// ErrTimeout marks failures caused by the request exceeding its time
// budget. Callers use it to tell timeouts apart from other upstream
// failures.
var ErrTimeout = errors.New("overpass request timed out")

var tracer = otel.Tracer("api-cafes/overpass")

//go:generate moq -rm -out client_mock.go . Client

type Client interface {
	Query(ctx context.Context, query string) ([]Element, error)
}

type overpassClient struct {
	url        string
	timeout    time.Duration
	retryDelay time.Duration
}

func New(url string, timeout, retryDelay time.Duration) Client {
	return &overpassClient{
		url:        url,
		timeout:    timeout,
		retryDelay: retryDelay,
	}
}

// Query posts an Overpass QL query and returns the elements from the
// response. Rate limiting (429), upstream timeouts (504) and transport
// level failures are retried once after a short delay, any other
// failure is returned immediately.
func (c *overpassClient) Query(ctx context.Context, query string) ([]Element, error) {
	var err error

	ctx, span := tracer.Start(ctx, "overpass-query")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   c.timeout,
	}

	for attempt := 0; ; attempt++ {
		var elements []Element
		var retryable bool

		elements, retryable, err = c.execute(ctx, &httpClient, query)
		if err == nil {
			return elements, nil
		}

		if !retryable || attempt >= maxRetries {
			return nil, err
		}

		log.Warn().Err(err).Msgf("overpass request failed, retrying in %s", c.retryDelay)

		if pauseErr := pause(ctx, c.retryDelay); pauseErr != nil {
			err = pauseErr
			return nil, err
		}
	}
}

func (c *overpassClient) execute(ctx context.Context, httpClient *http.Client, query string) ([]Element, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(query))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			err = fmt.Errorf("%w: %s", ErrTimeout, err.Error())
		} else {
			err = fmt.Errorf("failed to retrieve response from overpass: %w", err)
		}
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusGatewayTimeout {
		return nil, true, fmt.Errorf("overpass responded with status code %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("overpass responded with status code %d", resp.StatusCode)
	}

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			err = fmt.Errorf("%w: %s", ErrTimeout, err.Error())
		} else {
			err = fmt.Errorf("failed to read response body: %w", err)
		}
		return nil, true, err
	}

	response := queryResponse{}

	err = json.Unmarshal(respBody, &response)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return response.Elements, false, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}

func pause(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
