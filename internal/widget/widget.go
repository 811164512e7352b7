// Package widget does hit-testing and value mapping for the on-screen
// controls. Drawing is left to the host.
package widget

import "math"

// Rect is an axis-aligned box in logical screen pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies in r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Slider maps horizontal positions across its track to values in
// [Min, Max]. A positive Step snaps values to multiples of Step above Min.
type Slider struct {
	Rect
	Min, Max, Step float64
}

// ValueAt returns the value under screen column x, clamped to the track.
func (s Slider) ValueAt(x int) float64 {
	if s.W <= 0 {
		return s.Min
	}
	ratio := clamp01(float64(x-s.X) / float64(s.W))
	v := s.Min + ratio*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		if v > s.Max {
			v = s.Max
		}
	}
	return v
}

// KnobX returns the screen column of the knob for value v.
func (s Slider) KnobX(v float64) float64 {
	if s.Max <= s.Min {
		return float64(s.X)
	}
	return float64(s.X) + clamp01((v-s.Min)/(s.Max-s.Min))*float64(s.W)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
