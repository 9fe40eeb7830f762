package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Debug bool

	OutputDir string

	HTTPTimeoutSeconds int

	SourcesFile string // optional YAML file overriding the built-in source list
}

func NewConfig() *Config {
	return &Config{
		Debug: getBoolEnvDefault("DEBUG", false),

		OutputDir: getStringEnvDefault("OUTPUT_DIR", "output"),

		HTTPTimeoutSeconds: getIntEnvDefault("HTTP_TIMEOUT_SECONDS", 30),

		SourcesFile: getStringEnvDefault("SOURCES_FILE", ""),
	}
}

func getBoolEnvDefault(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}

func getStringEnvDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}

func getIntEnvDefault(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}
