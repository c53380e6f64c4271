// cmd/asteroids/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// options holds the parsed command line
type options struct {
	configPath    string
	createDefault bool
	renderer      string
	width         int
	height        int
	seed          int64
	frames        int
	logFile       string
	set           map[string]bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("asteroids", flag.ContinueOnError)
	opts := &options{set: make(map[string]bool)}

	fs.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file")
	fs.BoolVar(&opts.createDefault, "default", false, "Create default configuration file and exit")
	fs.StringVar(&opts.renderer, "renderer", config.RendererTerminal, "Renderer: 'terminal', 'engo' or 'headless'")
	fs.IntVar(&opts.width, "width", 0, "Field width in pixels (overrides config)")
	fs.IntVar(&opts.height, "height", 0, "Field height in pixels (overrides config)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed, 0 for time based (overrides config)")
	fs.IntVar(&opts.frames, "frames", 600, "Frames to simulate with the headless renderer")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (overrides config)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// loadConfig reads the config file if present, then layers environment
// variables and command line flags on top.
func loadConfig(opts *options) (*config.GameConfig, error) {
	gameConfig := config.DefaultConfig()
	if _, err := os.Stat(opts.configPath); err == nil {
		gameConfig, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", opts.configPath, err)
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		return nil, err
	}

	if opts.set["renderer"] {
		gameConfig.Renderer = opts.renderer
	}
	if opts.set["width"] {
		gameConfig.Screen.Width = opts.width
	}
	if opts.set["height"] {
		gameConfig.Screen.Height = opts.height
	}
	if opts.set["seed"] {
		gameConfig.Seed = opts.seed
	}
	if opts.set["log-file"] {
		gameConfig.LogFile = opts.logFile
	}

	if err := gameConfig.Validate(); err != nil {
		return nil, fmt.Errorf("command line: %w", err)
	}
	return gameConfig, nil
}

// openLogger picks the log destination. The terminal renderer owns stdout,
// so without a log file it logs nowhere.
func openLogger(cfg *config.GameConfig, stdout io.Writer) (*logging.Logger, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
	}
	if cfg.Renderer == config.RendererTerminal {
		return logging.NewDiscardLogger(), func() {}, nil
	}
	return logging.NewLoggerWithWriter(stdout), func() {}, nil
}

// subscribeEventLog logs every game event at debug level
func subscribeEventLog(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	for _, eventType := range []event.Type{
		event.BulletFired,
		event.AsteroidDestroyed,
		event.AsteroidSplit,
		event.ShipDestroyed,
		event.FieldCleared,
		event.GameReset,
	} {
		bus.Subscribe(eventType, func(e event.Event) {
			switch ev := e.(type) {
			case *event.AsteroidEvent:
				logger.Debug(ctx, "Game event", "type", ev.GetType(), "x", ev.X, "y", ev.Y, "size", ev.Size, "score", ev.Score)
			case *event.ShipEvent:
				logger.Debug(ctx, "Game event", "type", ev.GetType(), "x", ev.X, "y", ev.Y, "angle", ev.Angle, "score", ev.Score)
			case *event.ScoreEvent:
				logger.Debug(ctx, "Game event", "type", ev.GetType(), "score", ev.Score)
			default:
				logger.Debug(ctx, "Game event", "type", e.GetType())
			}
		})
	}
}

func run(args []string, stdout io.Writer) int {
	bootLogger := logging.NewLoggerWithWriter(os.Stderr)
	ctx := logging.WithSessionID(context.Background(), logging.GenerateSessionID())

	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			bootLogger.Error(ctx, "Failed to create default configuration", err, "config_path", opts.configPath)
			return 1
		}
		bootLogger.Info(ctx, "Created default configuration file", "config_path", opts.configPath)
		return 0
	}

	gameConfig, err := loadConfig(opts)
	if err != nil {
		bootLogger.Error(ctx, "Failed to load configuration", err, "config_path", opts.configPath)
		return 1
	}

	logger, closeLog, err := openLogger(gameConfig, stdout)
	if err != nil {
		bootLogger.Error(ctx, "Failed to open log", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting asteroids",
		"renderer", gameConfig.Renderer,
		"width", gameConfig.Screen.Width,
		"height", gameConfig.Screen.Height,
		"seed", gameConfig.Seed,
	)

	if err := play(ctx, gameConfig, opts, logger); err != nil {
		logger.Error(ctx, "Game stopped with error", err)
		return 1
	}
	return 0
}

// play builds the host named by the config and runs the game on it
func play(ctx context.Context, cfg *config.GameConfig, opts *options, logger *logging.Logger) error {
	rng := engine.NewRand(cfg.Seed)
	asteroidModel := entity.NewAsteroidModel(rng, cfg.Models.AsteroidVertices)

	var (
		surface  render.Surface
		renderer entity.Renderer
		host     func(render.FrameFunc) error
	)

	switch cfg.Renderer {
	case config.RendererHeadless:
		renderer = render.NewNullRenderer(logger)
		host = func(frame render.FrameFunc) error {
			err := render.RunHeadless(ctx, opts.frames, cfg.FrameRate, frame)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

	case config.RendererEngo:
		framebuffer := engorender.NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height)
		surface = framebuffer
		host = func(frame render.FrameFunc) error {
			engorender.Run(engorender.NewGameScene(cfg, framebuffer, frame, logger))
			return nil
		}

	default:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create terminal screen: %w", err)
		}
		terminal, err := render.NewTerminalHost(screen, cfg.Screen.Width, cfg.Screen.Height, cfg.FrameRate, cfg.Physics.MaxFrameTime, logger)
		if err != nil {
			return err
		}
		defer terminal.Close()
		surface = terminal.Surface()
		host = func(frame render.FrameFunc) error {
			return terminal.Run(ctx, frame)
		}
	}

	if renderer == nil {
		renderer = render.NewWireframeRenderer(surface, asteroidModel, cfg.Models.ShipScale)
	}

	game := engine.NewGameWithRand(cfg, renderer, rng)
	stats := engine.NewSessionStats(game.EventBus)
	defer stats.Close()
	subscribeEventLog(ctx, game.EventBus, logger)

	err := host(game.Update)

	state := game.GetGameState()
	logger.Info(ctx, "Session finished",
		append([]any{"frames", state.Frame, "score", state.Score}, stats.LogArgs()...)...,
	)
	return err
}
