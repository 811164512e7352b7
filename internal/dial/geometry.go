// Package dial holds the wind dial geometry and the session reducer.
//
// Screen coordinates are used throughout: the origin is the top-left
// corner of the drawing surface and y grows downward. Rotations are
// counter-clockwise from +x as seen on screen.
package dial

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/wind-dial/internal/config"
)

const (
	twoPi = 2 * math.Pi

	// Arrowhead offsets, in radians of additional counter-clockwise rotation
	TipToWing  = twoPi * 3 / 8
	WingToWing = twoPi / 4
)

var ErrInvalidConfig = errors.New("invalid dial config")

// Config is the fixed dial geometry.
type Config struct {
	Center      r2.Vec
	OuterRadius float64
	InnerRadius float64
}

// DefaultConfig returns the dial centered on the surface midpoint.
func DefaultConfig() Config {
	return Config{
		Center:      r2.Vec{X: config.MidPoint, Y: config.MidPoint},
		OuterRadius: config.OuterRadius,
		InnerRadius: config.InnerRadius,
	}
}

func (c Config) Validate() error {
	if c.InnerRadius <= 0 {
		return fmt.Errorf("%w: inner radius %g must be positive", ErrInvalidConfig, c.InnerRadius)
	}
	if c.OuterRadius <= c.InnerRadius {
		return fmt.Errorf("%w: outer radius %g must exceed inner radius %g", ErrInvalidConfig, c.OuterRadius, c.InnerRadius)
	}
	return nil
}

// Quadrant numbers the screen quadrants around the center, counter-clockwise
// starting up-right.
type Quadrant int

const (
	UpRight   Quadrant = 1
	UpLeft    Quadrant = 2
	DownLeft  Quadrant = 3
	DownRight Quadrant = 4
)

// ComputeAngle returns the acute angle in [0, π/2] between the segment
// center→p and the horizontal axis. A point on the vertical axis through
// the center (including the center itself) yields π/2.
func ComputeAngle(p, center r2.Vec) float64 {
	d := r2.Sub(p, center)
	h := math.Abs(d.X)
	v := math.Abs(d.Y)
	if h == 0 {
		return math.Pi / 2
	}
	return math.Atan(v / h)
}

// ClassifyQuadrant places p relative to center. Points on the vertical
// line count as left, points on the horizontal line count as top.
func ClassifyQuadrant(p, center r2.Vec) Quadrant {
	if p.X > center.X {
		if p.Y > center.Y {
			return DownRight
		}
		return UpRight
	}
	if p.Y > center.Y {
		return DownLeft
	}
	return UpLeft
}

// ToFullRotation reflects an acute angle into its quadrant, giving a
// rotation in [0, 2π).
func ToFullRotation(acute float64, q Quadrant) float64 {
	var r float64
	switch q {
	case UpRight:
		r = acute
	case UpLeft:
		r = math.Pi - acute
	case DownLeft:
		r = math.Pi + acute
	default:
		r = twoPi - acute
	}
	if r >= twoPi {
		r -= twoPi
	}
	return r
}

// Polar returns the point at radius r and rotation theta around origin.
// y is subtracted since screen y grows downward.
func Polar(origin r2.Vec, r, theta float64) r2.Vec {
	return r2.Add(origin, r2.Vec{X: r * math.Cos(theta), Y: -r * math.Sin(theta)})
}

// Arrowhead is the triangle drawn at the dial edge.
type Arrowhead struct {
	Tip, Wing1, Wing2 r2.Vec
}

// ArrowheadPoints builds the arrowhead for rotation on the circle of the
// given radius around center. The wings depend only on the rotation.
func ArrowheadPoints(rotation, radius float64, center r2.Vec) Arrowhead {
	w1 := rotation + TipToWing
	w2 := w1 + WingToWing
	return Arrowhead{
		Tip:   Polar(center, radius, rotation),
		Wing1: Polar(center, radius, w1),
		Wing2: Polar(center, radius, w2),
	}
}

// Vector is a pair of wind components.
type Vector struct {
	X, Y float64
}

// WindVector scales the angle into components. It is defined only when
// both inputs are present. The acute angle is used as given, not the full
// rotation.
func WindVector(angle float64, hasAngle bool, magnitude float64, hasMagnitude bool) (Vector, bool) {
	if !hasAngle || !hasMagnitude {
		return Vector{}, false
	}
	return Vector{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}, true
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
