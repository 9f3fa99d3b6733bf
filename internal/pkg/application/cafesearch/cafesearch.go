package cafesearch

import (
	"context"
	"time"

	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/overpass"
	"github.com/cafescout/api-cafes/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const emptyResultMessage = "No open cafes found. Try expanding the search area."

//go:generate moq -rm -out cafesearch_mock.go . CafeService

type CafeService interface {
	Search(ctx context.Context, lat, lon float64, radius int) (types.SearchResult, error)
}

type cafeService struct {
	overpass overpass.Client
	config   *Config
}

func New(client overpass.Client, cfg *Config) CafeService {
	return &cafeService{
		overpass: client,
		config:   cfg,
	}
}

// Search queries Overpass for open cafes around a position, growing the
// radius between rounds until enough cafes have been found or the
// configured limits are hit. The cafes collected so far and the radius
// of the last round are always returned, even when the minimum count
// could not be met.
func (s *cafeService) Search(ctx context.Context, lat, lon float64, radius int) (types.SearchResult, error) {
	log := logging.GetFromContext(ctx)

	search := s.config.Search

	if radius < search.DefaultRadius {
		radius = search.DefaultRadius
	}

	cafes := make([]types.Cafe, 0)

	for expansion := 0; ; expansion++ {
		query := overpass.BuildQuery(lat, lon, radius, s.config.Overpass.RequestTimeout(), search.Targets...)

		log.Info().Msgf("requesting cafes radius=%d lat=%g lon=%g expansion=%d", radius, lat, lon, expansion)
		log.Debug().Msgf("overpass query:\n%s", query)

		elements, err := s.overpass.Query(ctx, query)
		if err != nil {
			return types.SearchResult{}, err
		}

		cafes = parseElements(elements)

		log.Info().Msgf("overpass returned %d results (%d open after filtering) for radius=%d", len(elements), len(cafes), radius)

		if len(cafes) >= search.MinResults || radius >= search.MaxRadius || expansion == search.MaxExpansions {
			break
		}

		radius = expandRadius(radius, search)

		if err := pause(ctx, search.PauseBetweenRounds()); err != nil {
			return types.SearchResult{}, err
		}
	}

	result := types.SearchResult{
		Cafes:  cafes,
		Count:  len(cafes),
		Radius: radius,
	}

	if result.Count == 0 {
		result.Message = emptyResultMessage
	}

	return result, nil
}

// expandRadius doubles the radius, or adds the default radius when that
// grows faster, and never exceeds the configured maximum.
func expandRadius(radius int, cfg SearchConfig) int {
	expanded := radius * 2
	if expanded < radius+cfg.DefaultRadius {
		expanded = radius + cfg.DefaultRadius
	}

	if expanded > cfg.MaxRadius {
		expanded = cfg.MaxRadius
	}

	return expanded
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
