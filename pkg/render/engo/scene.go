// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// GameScene shows the framebuffer scaled up to fill the window
type GameScene struct {
	world       *ecs.World
	config      *config.GameConfig
	framebuffer *Framebuffer
	frame       render.FrameFunc
	logger      *logging.Logger

	frames *FrameSystem
}

// NewGameScene creates a new game scene. The framebuffer is the surface
// the game's renderer draws into; frame advances the game.
func NewGameScene(cfg *config.GameConfig, framebuffer *Framebuffer, frame render.FrameFunc, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &GameScene{
		world:       &ecs.World{},
		config:      cfg,
		framebuffer: framebuffer,
		frame:       frame,
		logger:      logger,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "AsteroidsScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	if world == nil {
		world = scene.world
	}
	scene.world = world

	common.SetBackground(color.Black)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	pixelSize := float32(scene.config.Screen.PixelSize)
	width, height := scene.framebuffer.Size()

	screen := &screenEntity{BasicEntity: ecs.NewBasic()}
	screen.RenderComponent = common.RenderComponent{
		Drawable: scene.framebuffer.Texture(),
		Scale:    engo.Point{X: pixelSize, Y: pixelSize},
	}
	screen.RenderComponent.SetMinFilter(common.FilterNearest)
	screen.RenderComponent.SetMagFilter(common.FilterNearest)
	screen.SpaceComponent = common.SpaceComponent{
		Position: engo.Point{X: 0, Y: 0},
		Width:    float32(width) * pixelSize,
		Height:   float32(height) * pixelSize,
	}
	renderSystem.Add(&screen.BasicEntity, &screen.RenderComponent, &screen.SpaceComponent)

	scene.frames = NewFrameSystem(scene.frame, scene.framebuffer, scene.config.Physics.MaxFrameTime)
	scene.frames.Add(screen)
	world.AddSystem(scene.frames)

	scene.logger.Info(context.Background(), "Engo scene ready",
		"width", width,
		"height", height,
		"pixel_size", scene.config.Screen.PixelSize,
	)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	frames := uint64(0)
	if scene.frames != nil {
		frames = scene.frames.Frames()
	}
	scene.logger.Info(context.Background(), "Engo scene exiting", "frames", frames)
}

// RunOptions returns the window options for cfg
func RunOptions(cfg *config.GameConfig) engo.RunOptions {
	return engo.RunOptions{
		Title:        "Go Asteroids",
		Width:        cfg.Screen.Width * cfg.Screen.PixelSize,
		Height:       cfg.Screen.Height * cfg.Screen.PixelSize,
		FPSLimit:     cfg.FrameRate,
		NotResizable: true,
		VSync:        true,
	}
}

// Run opens the window and blocks until it is closed
func Run(scene *GameScene) {
	engo.Run(RunOptions(scene.config), scene)
}
