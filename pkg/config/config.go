// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Renderer names accepted by GameConfig.Renderer
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererHeadless = "headless"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// GameConfig contains configuration for an asteroids session
type GameConfig struct {
	Screen    ScreenConfig  `json:"screen"`
	Physics   PhysicsConfig `json:"physics"`
	Rules     GameRules     `json:"rules"`
	Models    ModelConfig   `json:"models"`
	Renderer  string        `json:"renderer"`
	FrameRate int           `json:"frameRate"`
	Seed      int64         `json:"seed"`
	LogFile   string        `json:"logFile,omitempty"`
}

// ScreenConfig describes the playfield in character cells / logical pixels
type ScreenConfig struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	PixelSize int `json:"pixelSize"`
}

// PhysicsConfig contains motion constants, all per second
type PhysicsConfig struct {
	TurnRate      float64 `json:"turnRate"`
	Thrust        float64 `json:"thrust"`
	BulletSpeed   float64 `json:"bulletSpeed"`
	AsteroidSpeed float64 `json:"asteroidSpeed"`
	AsteroidSpin  float64 `json:"asteroidSpin"`
	MaxFrameTime  float64 `json:"maxFrameTime"`
}

// GameRules contains scoring and fragmentation rules
type GameRules struct {
	HitScore        int     `json:"hitScore"`
	ClearBonus      int     `json:"clearBonus"`
	SplitThreshold  int     `json:"splitThreshold"`
	SeedSize        int     `json:"seedSize"`
	RespawnDistance float64 `json:"respawnDistance"`
}

// ModelConfig contains wire-frame model parameters
type ModelConfig struct {
	AsteroidVertices int     `json:"asteroidVertices"`
	ShipScale        float64 `json:"shipScale"`
}

// LoadConfig loads a configuration from a file.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the classic 160x100 console setup
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:     160,
			Height:    100,
			PixelSize: 8,
		},
		Physics: PhysicsConfig{
			TurnRate:      5.0,
			Thrust:        20.0,
			BulletSpeed:   50.0,
			AsteroidSpeed: 10.0,
			AsteroidSpin:  0.5,
			MaxFrameTime:  0.1,
		},
		Rules: GameRules{
			HitScore:        100,
			ClearBonus:      1000,
			SplitThreshold:  4,
			SeedSize:        16,
			RespawnDistance: 30,
		},
		Models: ModelConfig{
			AsteroidVertices: 20,
			ShipScale:        1.25,
		},
		Renderer:  RendererTerminal,
		FrameRate: 60,
	}
}

// Validate checks that the configuration can drive a session
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.PixelSize <= 0 {
		return fmt.Errorf("%w: pixelSize must be positive, got %d", ErrInvalidConfig, c.Screen.PixelSize)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frameRate must be positive, got %d", ErrInvalidConfig, c.FrameRate)
	}
	if c.Physics.MaxFrameTime <= 0 {
		return fmt.Errorf("%w: maxFrameTime must be positive, got %v", ErrInvalidConfig, c.Physics.MaxFrameTime)
	}
	if c.Rules.SeedSize <= 0 {
		return fmt.Errorf("%w: seedSize must be positive, got %d", ErrInvalidConfig, c.Rules.SeedSize)
	}
	if c.Rules.SplitThreshold < 1 {
		return fmt.Errorf("%w: splitThreshold must be at least 1, got %d", ErrInvalidConfig, c.Rules.SplitThreshold)
	}
	if c.Rules.HitScore < 0 || c.Rules.ClearBonus < 0 {
		return fmt.Errorf("%w: scores must not be negative, got hitScore %d clearBonus %d", ErrInvalidConfig, c.Rules.HitScore, c.Rules.ClearBonus)
	}
	if c.Models.AsteroidVertices < 3 {
		return fmt.Errorf("%w: asteroidVertices must be at least 3, got %d", ErrInvalidConfig, c.Models.AsteroidVertices)
	}
	switch c.Renderer {
	case RendererTerminal, RendererEngo, RendererHeadless:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	return nil
}
