package engo

import (
	"testing"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/input"
)

func newTestFrameSystem(maxFrameTime float64, frame func(float64, input.Source)) *FrameSystem {
	fs := NewFrameSystem(frame, NewFramebuffer(8, 8), maxFrameTime)
	fs.poll = func() input.Snapshot { return input.Snapshot{}.WithHeld(input.Thrust) }
	fs.quit = func() bool { return false }
	return fs
}

func TestFrameSystem_Update(t *testing.T) {
	tests := []struct {
		name     string
		dt       float32
		expected float64
	}{
		{"regular frame", 0.016, float64(float32(0.016))},
		{"capped stall", 2, 0.1},
		{"negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got float64
			var thrust bool
			fs := newTestFrameSystem(0.1, func(deltaTime float64, in input.Source) {
				got = deltaTime
				thrust = in.Held(input.Thrust)
			})

			fs.Update(tt.dt)

			if got != tt.expected {
				t.Errorf("deltaTime = %v, expected %v", got, tt.expected)
			}
			if !thrust {
				t.Error("polled input was not passed to the frame")
			}
			if fs.Frames() != 1 {
				t.Errorf("Frames() = %d, expected 1", fs.Frames())
			}
		})
	}
}

func TestFrameSystem_AddRemove(t *testing.T) {
	fs := newTestFrameSystem(0.1, func(float64, input.Source) {})
	screen := &screenEntity{BasicEntity: ecs.NewBasic()}

	fs.Add(screen)
	if fs.screen != screen {
		t.Fatal("Add() did not keep the screen entity")
	}

	fs.Remove(ecs.NewBasic())
	if fs.screen == nil {
		t.Error("Remove() of another entity dropped the screen")
	}

	fs.Remove(screen.BasicEntity)
	if fs.screen != nil {
		t.Error("Remove() kept the screen entity")
	}
}

func TestRunOptions(t *testing.T) {
	cfg := config.DefaultConfig()

	opts := RunOptions(cfg)

	if opts.Width != 1280 || opts.Height != 800 {
		t.Errorf("window = %dx%d, expected 1280x800", opts.Width, opts.Height)
	}
	if opts.FPSLimit != 60 {
		t.Errorf("FPSLimit = %d, expected 60", opts.FPSLimit)
	}
}

func TestNewGameScene(t *testing.T) {
	cfg := config.DefaultConfig()
	fb := NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height)

	scene := NewGameScene(cfg, fb, func(float64, input.Source) {}, nil)

	if scene.Type() != "AsteroidsScene" {
		t.Errorf("Type() = %q, expected AsteroidsScene", scene.Type())
	}
	if scene.world == nil || scene.logger == nil {
		t.Error("NewGameScene() left world or logger nil")
	}
}
