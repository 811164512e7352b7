package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// circleSegments is the polygon resolution used for circles.
const circleSegments = 96

// ImageCanvas rasterizes onto an RGBA image. It backs the headless
// renderer and PNG export.
type ImageCanvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func NewImageCanvas(width, height int, bg color.Color) *ImageCanvas {
	c := &ImageCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
	c.Clear(bg)
	return c
}

func (c *ImageCanvas) Image() *image.RGBA { return c.img }

func (c *ImageCanvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *ImageCanvas) Clear(bg color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (c *ImageCanvas) FillCircle(center r2.Vec, radius float64, col color.Color) {
	c.begin()
	c.ring(center, radius, false)
	c.paint(col)
}

// StrokeCircle fills the annulus of the given width centered on the circle.
// The inner ring is wound the other way so it cancels out.
func (c *ImageCanvas) StrokeCircle(center r2.Vec, radius, width float64, col color.Color) {
	c.begin()
	c.ring(center, radius+width/2, false)
	if inner := radius - width/2; inner > 0 {
		c.ring(center, inner, true)
	}
	c.paint(col)
}

// StrokeLine fills the rectangle of the given width around the segment,
// with butt ends.
func (c *ImageCanvas) StrokeLine(from, to r2.Vec, width float64, col color.Color) {
	d := r2.Sub(to, from)
	n := r2.Norm(d)
	if n == 0 {
		return
	}
	off := r2.Scale(width/2/n, r2.Vec{X: -d.Y, Y: d.X})

	c.begin()
	c.moveTo(r2.Add(from, off))
	c.lineTo(r2.Add(to, off))
	c.lineTo(r2.Sub(to, off))
	c.lineTo(r2.Sub(from, off))
	c.z.ClosePath()
	c.paint(col)
}

func (c *ImageCanvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *ImageCanvas) ring(center r2.Vec, radius float64, reverse bool) {
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			theta = -theta
		}
		p := r2.Vec{X: center.X + radius*math.Cos(theta), Y: center.Y + radius*math.Sin(theta)}
		if i == 0 {
			c.moveTo(p)
		} else {
			c.lineTo(p)
		}
	}
	c.z.ClosePath()
}

func (c *ImageCanvas) paint(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *ImageCanvas) moveTo(p r2.Vec) { c.z.MoveTo(float32(p.X), float32(p.Y)) }
func (c *ImageCanvas) lineTo(p r2.Vec) { c.z.LineTo(float32(p.X), float32(p.Y)) }
