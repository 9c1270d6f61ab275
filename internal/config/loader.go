package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"meteocat-mcp/pkg/logging"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Environment variable names consumed by the loader.
const (
	EnvAPIKey = "METEOCAT_API_KEY"
	EnvPort   = "PORT"
)

// LoadConfig loads configuration in order of increasing precedence:
// built-in defaults, then config.yaml from configPath (if any), then
// environment variables. A missing config file is not an error.
func LoadConfig(configPath string) (Config, error) {
	config := GetDefaultConfig()

	if configPath != "" {
		configFilePath := filepath.Join(configPath, configFileName)
		data, err := os.ReadFile(configFilePath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
		case err != nil:
			return Config{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				// config malformed
				return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
			}
			logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
		}
	}

	applyEnvOverrides(&config)
	return config, nil
}

func applyEnvOverrides(config *Config) {
	config.APIKey = os.Getenv(EnvAPIKey)

	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			logging.Warn("ConfigLoader", "Ignoring invalid %s value %q", EnvPort, portStr)
		} else {
			config.Server.Port = port
		}
	}
}
