package dial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// State is the session state. It is a plain value: Reduce returns a new
// one and callers only ever hold copies.
type State struct {
	Angle    float64 // acute angle of the last click
	HasAngle bool
	Click    r2.Vec // last click, meaningful only with HasAngle

	Magnitude    float64
	HasMagnitude bool
}

// Wind returns the wind vector for the current angle and magnitude.
func (s State) Wind() (Vector, bool) {
	return WindVector(s.Angle, s.HasAngle, s.Magnitude, s.HasMagnitude)
}

// Event is one host interaction.
type Event interface {
	isEvent()
}

// Click is a pointer click at a surface coordinate.
type Click struct {
	Point r2.Vec
}

// MagnitudeInput is a slider change. Present is false when the input was
// blank.
type MagnitudeInput struct {
	Value   float64
	Present bool
}

// Reset clears the session.
type Reset struct{}

func (Click) isEvent()          {}
func (MagnitudeInput) isEvent() {}
func (Reset) isEvent()          {}

// Command is a drawing instruction for the renderer.
type Command interface {
	isCommand()
}

type ClearSurface struct{}

type DrawBaseDial struct{}

type DrawClickMarker struct {
	Point r2.Vec
}

// DrawArrowhead is a closed path Start → Wing1 → Wing2 → Start.
type DrawArrowhead struct {
	Start, Wing1, Wing2 r2.Vec
}

func (ClearSurface) isCommand()    {}
func (DrawBaseDial) isCommand()    {}
func (DrawClickMarker) isCommand() {}
func (DrawArrowhead) isCommand()   {}

// Options are the engine's tunables.
type Options struct {
	// AnchorAtClick starts the arrowhead path at the raw click point
	// rather than the on-circle tip.
	AnchorAtClick    bool
	DefaultMagnitude float64
}

// Engine turns events into state transitions and drawing commands.
type Engine struct {
	cfg  Config
	opts Options
}

func NewEngine(cfg Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, opts: opts}, nil
}

func (e *Engine) Config() Config { return e.cfg }

// Init returns the starting state and the commands that draw the empty
// dial.
func (e *Engine) Init() (State, []Command) {
	return e.initialState(), []Command{DrawBaseDial{}}
}

func (e *Engine) initialState() State {
	return State{
		Magnitude:    e.opts.DefaultMagnitude,
		HasMagnitude: true,
	}
}

// Reduce applies ev to s. Unknown events leave the state unchanged.
func (e *Engine) Reduce(s State, ev Event) (State, []Command) {
	switch ev := ev.(type) {
	case Click:
		return e.click(s, ev.Point)
	case MagnitudeInput:
		s.Magnitude = ev.Value
		s.HasMagnitude = ev.Present
		if !ev.Present {
			s.Magnitude = 0
		}
		return s, nil
	case Reset:
		return e.initialState(), []Command{ClearSurface{}, DrawBaseDial{}}
	}
	return s, nil
}

func (e *Engine) click(s State, p r2.Vec) (State, []Command) {
	center := e.cfg.Center
	angle := ComputeAngle(p, center)
	rotation := ToFullRotation(angle, ClassifyQuadrant(p, center))
	head := ArrowheadPoints(rotation, e.cfg.OuterRadius, center)

	s.Angle = angle
	s.HasAngle = true
	s.Click = p

	start := head.Tip
	if e.opts.AnchorAtClick {
		start = p
	}
	return s, []Command{
		DrawClickMarker{Point: p},
		DrawArrowhead{Start: start, Wing1: head.Wing1, Wing2: head.Wing2},
	}
}

// ParseMagnitude reads typed magnitude text. Blank text is an absent
// magnitude, not an error.
func ParseMagnitude(text string) (MagnitudeInput, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return MagnitudeInput{}, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return MagnitudeInput{}, fmt.Errorf("magnitude %q is not a number", text)
	}
	return MagnitudeInput{Value: v, Present: true}, nil
}
