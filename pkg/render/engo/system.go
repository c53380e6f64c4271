// pkg/render/engo/system.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// screenEntity is the single full-window sprite the framebuffer is shown on
type screenEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// FrameSystem drives one game frame per engo update and re-uploads the
// framebuffer as the screen entity's texture.
type FrameSystem struct {
	frame        render.FrameFunc
	framebuffer  *Framebuffer
	screen       *screenEntity
	maxFrameTime float64
	poll         func() input.Snapshot
	upload       func(*Framebuffer) common.Texture
	quit         func() bool

	texture    *common.Texture
	frameCount uint64
}

// NewFrameSystem creates a system that calls frame with engo's frame time
// capped at maxFrameTime seconds.
func NewFrameSystem(frame render.FrameFunc, framebuffer *Framebuffer, maxFrameTime float64) *FrameSystem {
	return &FrameSystem{
		frame:        frame,
		framebuffer:  framebuffer,
		maxFrameTime: maxFrameTime,
		poll:         pollButtons,
		upload:       (*Framebuffer).Texture,
		quit:         func() bool { return engo.Input.Button(ButtonQuit).JustPressed() },
	}
}

// Add satisfies the ecs.System interface
func (fs *FrameSystem) Add(screen *screenEntity) {
	fs.screen = screen
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {
	if fs.screen != nil && fs.screen.ID() == basic.ID() {
		fs.screen = nil
	}
}

// Update runs the game frame and swaps in the new texture
func (fs *FrameSystem) Update(dt float32) {
	if fs.quit() {
		engo.Exit()
		return
	}

	fs.frame(fs.capDelta(dt), fs.poll())
	fs.frameCount++

	if fs.screen == nil {
		return
	}
	texture := fs.upload(fs.framebuffer)
	fs.screen.Drawable = texture
	if fs.texture != nil {
		fs.texture.Close()
	}
	fs.texture = &texture
}

// Frames returns the number of game frames run
func (fs *FrameSystem) Frames() uint64 {
	return fs.frameCount
}

func (fs *FrameSystem) capDelta(dt float32) float64 {
	deltaTime := float64(dt)
	if deltaTime < 0 {
		return 0
	}
	if fs.maxFrameTime > 0 && deltaTime > fs.maxFrameTime {
		return fs.maxFrameTime
	}
	return deltaTime
}
