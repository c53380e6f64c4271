// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognised by ApplyEnvironmentOverrides
const (
	EnvScreenWidth  = "ASTEROIDS_SCREEN_WIDTH"
	EnvScreenHeight = "ASTEROIDS_SCREEN_HEIGHT"
	EnvPixelSize    = "ASTEROIDS_PIXEL_SIZE"
	EnvRenderer     = "ASTEROIDS_RENDERER"
	EnvFrameRate    = "ASTEROIDS_FRAME_RATE"
	EnvSeed         = "ASTEROIDS_SEED"
	EnvLogFile      = "ASTEROIDS_LOG_FILE"
)

// ApplyEnvironmentOverrides replaces config values with any ASTEROIDS_*
// variables that are set, then validates the result.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	config.Screen.Width = getEnvAsIntOrDefault(EnvScreenWidth, config.Screen.Width)
	config.Screen.Height = getEnvAsIntOrDefault(EnvScreenHeight, config.Screen.Height)
	config.Screen.PixelSize = getEnvAsIntOrDefault(EnvPixelSize, config.Screen.PixelSize)
	config.Renderer = getEnvOrDefault(EnvRenderer, config.Renderer)
	config.FrameRate = getEnvAsIntOrDefault(EnvFrameRate, config.FrameRate)
	config.Seed = getEnvAsInt64OrDefault(EnvSeed, config.Seed)
	config.LogFile = getEnvOrDefault(EnvLogFile, config.LogFile)

	if err := config.Validate(); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
