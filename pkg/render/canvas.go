// pkg/render/canvas.go
package render

// Canvas draws wrapped points and lines onto a Surface. Every pixel is
// folded back onto the torus before it reaches the surface, so shapes that
// straddle an edge reappear on the opposite side.
type Canvas struct {
	surface Surface
	width   int
	height  int
}

// NewCanvas creates a canvas covering the whole surface
func NewCanvas(surface Surface) *Canvas {
	width, height := surface.Size()
	return &Canvas{
		surface: surface,
		width:   width,
		height:  height,
	}
}

// Surface returns the underlying surface
func (c *Canvas) Surface() Surface {
	return c.surface
}

// Clear fills the whole surface with black
func (c *Canvas) Clear() {
	c.surface.FillRect(0, 0, c.width, c.height, Black)
}

// Draw sets the pixel at (x, y) after wrapping it into range. The wrap is
// a full modulo, so points several extents away also land on the field.
func (c *Canvas) Draw(x, y int, col Color) {
	if c.width <= 0 || c.height <= 0 {
		return
	}
	c.surface.SetPixel(wrapIndex(x, c.width), wrapIndex(y, c.height), col)
}

// DrawLine rasterises the segment between two points with Bresenham's
// algorithm, drawing both endpoints.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col Color) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy
	for {
		c.Draw(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func wrapIndex(v, extent int) int {
	v %= extent
	if v < 0 {
		v += extent
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
