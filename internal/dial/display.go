package dial

import (
	"fmt"
	"strconv"
)

// Placeholder is shown by every sink with nothing to display.
const Placeholder = "-"

// Display holds the text of the four output sinks.
type Display struct {
	Angle  string
	Coords string
	WindX  string
	WindY  string
}

// Display formats s. Angles are shown in radians unless degrees is set.
func (s State) Display(degrees bool) Display {
	d := Display{
		Angle:  Placeholder,
		Coords: formatCoords(Placeholder, Placeholder),
		WindX:  Placeholder,
		WindY:  Placeholder,
	}
	if s.HasAngle {
		a := s.Angle
		if degrees {
			a = RadToDeg(a)
		}
		d.Angle = round1(a)
		d.Coords = formatCoords(formatNumber(s.Click.X), formatNumber(s.Click.Y))
	}
	if v, ok := s.Wind(); ok {
		d.WindX = round1(v.X)
		d.WindY = round1(v.Y)
	}
	return d
}

func (d Display) Lines() []string {
	return []string{
		"angle: " + d.Angle,
		d.Coords,
		"wind x: " + d.WindX,
		"wind y: " + d.WindY,
	}
}

func formatCoords(x, y string) string {
	return fmt.Sprintf("x: %s y: %s", x, y)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round1 rounds to one decimal, never printing negative zero.
func round1(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}
