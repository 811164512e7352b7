// Package render draws dial commands onto a Canvas.
package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/wind-dial/internal/config"
	"github.com/iburimskiy/wind-dial/internal/dial"
)

// Canvas is a drawing surface that keeps what is drawn on it until cleared.
type Canvas interface {
	Clear(c color.Color)
	StrokeCircle(center r2.Vec, radius, width float64, c color.Color)
	FillCircle(center r2.Vec, radius float64, c color.Color)
	StrokeLine(from, to r2.Vec, width float64, c color.Color)
}

// Style holds the static colors and sizes used for drawing.
type Style struct {
	Stroke, Marker, Background color.Color

	StrokeWidth         float64
	MarkerRadius        float64
	CrosshairHalfLength float64
}

func DefaultStyle() Style {
	return Style{
		Stroke:              config.StrokeColor,
		Marker:              config.MarkerColor,
		Background:          config.BackgroundColor,
		StrokeWidth:         config.StrokeWidth,
		MarkerRadius:        config.MarkerRadius,
		CrosshairHalfLength: config.CrosshairHalfLength,
	}
}

// Renderer is stateless; all state lives in the canvas.
type Renderer struct {
	Dial  dial.Config
	Style Style
}

func NewRenderer(cfg dial.Config) *Renderer {
	return &Renderer{Dial: cfg, Style: DefaultStyle()}
}

// Execute draws cmds in order.
func (r *Renderer) Execute(c Canvas, cmds []dial.Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case dial.ClearSurface:
			c.Clear(r.Style.Background)
		case dial.DrawBaseDial:
			r.drawBaseDial(c)
		case dial.DrawClickMarker:
			c.FillCircle(cmd.Point, r.Style.MarkerRadius, r.Style.Marker)
		case dial.DrawArrowhead:
			r.drawArrowhead(c, cmd)
		}
	}
}

func (r *Renderer) drawBaseDial(c Canvas) {
	center := r.Dial.Center
	h := r.Style.CrosshairHalfLength
	w := r.Style.StrokeWidth

	c.StrokeLine(r2.Vec{X: center.X, Y: center.Y - h}, r2.Vec{X: center.X, Y: center.Y + h}, w, r.Style.Stroke)
	c.StrokeLine(r2.Vec{X: center.X - h, Y: center.Y}, r2.Vec{X: center.X + h, Y: center.Y}, w, r.Style.Stroke)
	c.StrokeCircle(center, r.Dial.OuterRadius, w, r.Style.Stroke)
}

func (r *Renderer) drawArrowhead(c Canvas, a dial.DrawArrowhead) {
	w := r.Style.StrokeWidth
	c.StrokeLine(a.Start, a.Wing1, w, r.Style.Stroke)
	c.StrokeLine(a.Wing1, a.Wing2, w, r.Style.Stroke)
	c.StrokeLine(a.Wing2, a.Start, w, r.Style.Stroke)
}
