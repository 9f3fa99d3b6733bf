package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/cafescout/api-cafes/internal/pkg/application/cafesearch"
	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/overpass"
	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/router"
	"github.com/cafescout/api-cafes/internal/pkg/presentation/api"
	"github.com/cafescout/api-cafes/internal/pkg/presentation/frontend"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const serviceName string = "api-cafes"

func main() {
	godotenv.Load()

	serviceVersion := buildinfo.SourceVersion()
	_, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	configFilePath := parseExternalConfig(logger)
	cfg := loadConfiguration(logger, configFilePath)

	svc := createCafeService(logger, cfg)
	r := createAppAndSetupRouter(logger, serviceName, svc)

	apiPort := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")

	logger.Info().Msgf("starting to listen for connections on port %s", apiPort)

	err := http.ListenAndServe(":"+apiPort, r)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to listen for connections")
	}
}

func parseExternalConfig(logger zerolog.Logger) string {
	// Allow environment variables to override certain defaults
	configFilePath := env.GetVariableOrDefault(logger, "CONFIG_FILE", "/opt/cafescout/config/config.yaml")

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "search and overpass configuration file", func(value string) error {
		configFilePath = value
		return nil
	})
	flag.Parse()

	return configFilePath
}

// loadConfiguration reads the configuration file when one exists. The
// service is expected to be able to boot without any configuration at
// all, so a missing file just means defaults.
func loadConfiguration(logger zerolog.Logger, filePath string) *cafesearch.Config {
	cfgFile, err := os.Open(filePath)
	if err != nil {
		logger.Info().Msgf("no configuration file found at %s, using defaults", filePath)
		return cafesearch.DefaultConfiguration()
	}
	defer cfgFile.Close()

	cfg, err := cafesearch.LoadConfiguration(cfgFile)
	if err != nil {
		logger.Fatal().Err(err).Msgf("failed to parse configuration file %s", filePath)
	}

	return cfg
}

func createCafeService(logger zerolog.Logger, cfg *cafesearch.Config) cafesearch.CafeService {
	overpassURL := env.GetVariableOrDefault(logger, "OVERPASS_URL", cfg.Overpass.URL)
	overpassClient := overpass.New(overpassURL, cfg.Overpass.RequestTimeout(), overpass.DefaultRetryDelay)

	return cafesearch.New(overpassClient, cfg)
}

func createAppAndSetupRouter(logger zerolog.Logger, serviceName string, svc cafesearch.CafeService) *chi.Mux {
	r := router.New(serviceName)

	wwwroot := env.GetVariableOrDefault(logger, "WWWROOT_PATH", "/opt/cafescout/wwwroot")
	frontend.RegisterHandlers(logger, r, wwwroot)

	return api.RegisterHandlers(logger, r, svc)
}
