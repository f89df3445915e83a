package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Output formats understood by the report writers.
var OutputFormats = []string{"table", "json", "csv"}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	ShapeConstant float64 // applied to records that omit one
	Workers       int
	OutputFormat  string
	LogDir        string // empty disables the rotating file sink
	MetricsFile   string // empty disables the Prometheus textfile
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. The executable's directory wins over the working directory
	if exePath, err := os.Executable(); err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to the working directory (useful for go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	shape, err := getEnvFloat("SHAPE_CONSTANT", 0.507)
	if err != nil {
		return nil, err
	}
	if shape <= 0 {
		return nil, fmt.Errorf("invalid SHAPE_CONSTANT %g: must be positive", shape)
	}

	workers, err := getEnvInt("BATCH_WORKERS", 1)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("invalid BATCH_WORKERS %d: must be at least 1", workers)
	}

	format := getEnv("OUTPUT_FORMAT", "table")
	if !ValidFormat(format) {
		return nil, fmt.Errorf("invalid OUTPUT_FORMAT %q: want one of %v", format, OutputFormats)
	}

	return &AppConfig{
		ShapeConstant: shape,
		Workers:       workers,
		OutputFormat:  format,
		LogDir:        getEnv("LOGS_FOLDER", ""),
		MetricsFile:   getEnv("METRICS_TEXTFILE", ""),
	}, nil
}

// ValidFormat reports whether format is one of OutputFormats.
func ValidFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return v, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return v, nil
}
