// pkg/render/engo/framebuffer.go
package engo

import (
	"image"
	"image/draw"

	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/opd-ai/go-asteroids/pkg/render"
)

// Framebuffer is a render.Surface backed by an RGBA image. One image pixel
// is one game pixel; the scene scales the uploaded texture to the window.
type Framebuffer struct {
	img  *image.RGBA
	face font.Face
}

// NewFramebuffer creates a black width by height framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
	fb.FillRect(0, 0, width, height, render.Black)
	return fb
}

// Image returns the backing image
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Size implements render.Surface.
func (fb *Framebuffer) Size() (int, int) {
	b := fb.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetPixel implements render.Surface.
func (fb *Framebuffer) SetPixel(x, y int, c render.Color) {
	if !(image.Point{X: x, Y: y}).In(fb.img.Bounds()) {
		return
	}
	fb.img.SetRGBA(x, y, c.RGBA())
}

// FillRect implements render.Surface.
func (fb *Framebuffer) FillRect(x, y, w, h int, c render.Color) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(fb.img.Bounds())
	draw.Draw(fb.img, rect, &image.Uniform{C: c.RGBA()}, image.Point{}, draw.Src)
}

// DrawText implements render.Surface. (x, y) is the top-left corner of the
// first glyph.
func (fb *Framebuffer) DrawText(x, y int, s string, c render.Color) {
	drawer := font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(c.RGBA()),
		Face: fb.face,
		Dot:  fixed.P(x, y+fb.face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(s)
}

// nrgba copies the framebuffer into the non-premultiplied layout engo
// uploads textures from.
func (fb *Framebuffer) nrgba() *image.NRGBA {
	bounds := fb.img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, fb.img, bounds.Min, draw.Src)
	return out
}

// Texture uploads the current frame. It needs a live GL context.
func (fb *Framebuffer) Texture() common.Texture {
	return common.NewTextureSingle(common.NewImageObject(fb.nrgba()))
}

var _ render.Surface = (*Framebuffer)(nil)
