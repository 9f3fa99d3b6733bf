package cafesearch

import (
	"io"
	"time"

	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/overpass"
	yaml "gopkg.in/yaml.v2"
)

type OverpassConfig struct {
	URL     string `yaml:"url"`
	Timeout int    `yaml:"timeout"`
}

type SearchConfig struct {
	DefaultRadius  int                    `yaml:"defaultradius"`
	MaxRadius      int                    `yaml:"maxradius"`
	MinResults     int                    `yaml:"minresults"`
	MaxExpansions  int                    `yaml:"maxexpansions"`
	ExpansionDelay int                    `yaml:"expansiondelay"`
	Targets        []overpass.TagSelector `yaml:"targets"`
}

type Config struct {
	Overpass OverpassConfig `yaml:"overpass"`
	Search   SearchConfig   `yaml:"search"`
}

// RequestTimeout returns the configured Overpass timeout, which doubles
// as the http client timeout and the [timeout:N] setting in the query.
func (c OverpassConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// PauseBetweenRounds returns how long the search controller waits
// before it retries with a larger radius.
func (c SearchConfig) PauseBetweenRounds() time.Duration {
	return time.Duration(c.ExpansionDelay) * time.Second
}

// DefaultConfiguration returns the settings the service runs with when
// no configuration file is provided.
func DefaultConfiguration() *Config {
	return &Config{
		Overpass: OverpassConfig{
			URL:     overpass.DefaultURL,
			Timeout: 60,
		},
		Search: SearchConfig{
			DefaultRadius:  4000,
			MaxRadius:      15000,
			MinResults:     10,
			MaxExpansions:  2,
			ExpansionDelay: 2,
			Targets: []overpass.TagSelector{
				{Key: "amenity", Value: "cafe"},
				{Key: "amenity", Value: "coffee_shop"},
				{Key: "shop", Value: "coffee"},
			},
		},
	}
}

// LoadConfiguration reads yaml encoded settings, leaving the defaults
// in place for anything the file does not mention.
func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfiguration()
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
