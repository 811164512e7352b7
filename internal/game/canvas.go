package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// surfaceCanvas draws onto the offscreen dial image. Whatever is drawn
// stays until Clear.
type surfaceCanvas struct {
	img *ebiten.Image
}

func (c surfaceCanvas) Clear(bg color.Color) {
	c.img.Fill(bg)
}

func (c surfaceCanvas) StrokeCircle(center r2.Vec, radius, width float64, clr color.Color) {
	vector.StrokeCircle(c.img, float32(center.X), float32(center.Y), float32(radius), float32(width), clr, true)
}

func (c surfaceCanvas) FillCircle(center r2.Vec, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c surfaceCanvas) StrokeLine(from, to r2.Vec, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}
