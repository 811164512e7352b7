// Package headless replays a scripted session onto an image without a
// window.
package headless

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/wind-dial/internal/config"
	"github.com/iburimskiy/wind-dial/internal/dial"
	"github.com/iburimskiy/wind-dial/internal/render"
)

// Script is the sequence applied after the dial is drawn: every click in
// order, then the magnitude (if set), then an optional reset.
type Script struct {
	Clicks     []r2.Vec
	Magnitude  *dial.MagnitudeInput
	ResetAtEnd bool
}

// Result is the final display text and surface.
type Result struct {
	Display dial.Display
	Canvas  *render.ImageCanvas
}

// ParsePoint reads "x,y".
func ParsePoint(s string) (r2.Vec, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return r2.Vec{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("point %q: %w", s, err)
	}
	return r2.Vec{X: x, Y: y}, nil
}

// NewScript builds a script from command line values. noMagnitude wins
// over magnitude.
func NewScript(clicks []string, magnitude string, noMagnitude, reset bool) (Script, error) {
	script := Script{ResetAtEnd: reset}
	for _, c := range clicks {
		p, err := ParsePoint(c)
		if err != nil {
			return script, err
		}
		script.Clicks = append(script.Clicks, p)
	}
	switch {
	case noMagnitude:
		script.Magnitude = &dial.MagnitudeInput{}
	case magnitude != "":
		in, err := dial.ParseMagnitude(magnitude)
		if err != nil {
			return script, err
		}
		script.Magnitude = &in
	}
	return script, nil
}

// Events lists the script as engine events.
func (s Script) Events() []dial.Event {
	events := make([]dial.Event, 0, len(s.Clicks)+2)
	for _, p := range s.Clicks {
		events = append(events, dial.Click{Point: p})
	}
	if s.Magnitude != nil {
		events = append(events, *s.Magnitude)
	}
	if s.ResetAtEnd {
		events = append(events, dial.Reset{})
	}
	return events
}

// Run plays the script through a fresh engine.
func Run(settings config.Settings, script Script) (Result, error) {
	engine, err := dial.NewEngine(dial.DefaultConfig(), dial.Options{
		AnchorAtClick:    settings.ArrowAnchor == config.AnchorClick,
		DefaultMagnitude: settings.Magnitude.Default,
	})
	if err != nil {
		return Result{}, err
	}
	r := render.NewRenderer(engine.Config())
	c := render.NewImageCanvas(config.SurfaceWidth, config.SurfaceHeight, r.Style.Background)

	state, cmds := engine.Init()
	r.Execute(c, cmds)
	for _, ev := range script.Events() {
		state, cmds = engine.Reduce(state, ev)
		r.Execute(c, cmds)
	}
	return Result{
		Display: state.Display(settings.AngleUnit == config.UnitDegrees),
		Canvas:  c,
	}, nil
}
