// pkg/render/surface.go
package render

import "image/color"

// Color is one of the palette entries the game draws with
type Color uint8

// Palette
const (
	Black Color = iota
	White
	Yellow
)

// RGBA returns the color for hosts that draw into images
func (c Color) RGBA() color.RGBA {
	switch c {
	case White:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case Yellow:
		return color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	default:
		return color.RGBA{A: 0xff}
	}
}

// String returns the palette name
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Surface is the pixel target a host provides. Coordinates are game units;
// hosts decide how a unit maps to cells or screen pixels.
type Surface interface {
	// Size returns the drawable extent in pixels.
	Size() (width, height int)
	// SetPixel colors one pixel. Out-of-range coordinates are ignored.
	SetPixel(x, y int, c Color)
	// FillRect colors a w by h block starting at (x, y).
	FillRect(x, y, w, h int, c Color)
	// DrawText writes s with its first character at (x, y).
	DrawText(x, y int, s string, c Color)
}

// Presenter is implemented by surfaces that buffer a frame and need an
// explicit flush once it is complete.
type Presenter interface {
	Present()
}
