// pkg/render/host.go
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/input"
)

// FrameFunc advances the game by one frame. Hosts call it from their own
// loop with the elapsed seconds and the frame's input snapshot.
type FrameFunc func(deltaTime float64, in input.Source)

// RunHeadless drives frame for the given number of frames at a fixed step
// with no input. It stops early when ctx is cancelled.
func RunHeadless(ctx context.Context, frames int, frameRate int, frame FrameFunc) error {
	if frameRate <= 0 {
		frameRate = 60
	}
	deltaTime := 1.0 / float64(frameRate)

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame(deltaTime, input.None)
	}
	return nil
}
