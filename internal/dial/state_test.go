package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), opts)
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	c := DefaultConfig()
	c.InnerRadius = -1
	_, err := NewEngine(c, Options{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInit(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	s, cmds := e.Init()
	assert.False(t, s.HasAngle)
	assert.True(t, s.HasMagnitude)
	assert.Equal(t, 5.0, s.Magnitude)
	assert.Equal(t, []Command{DrawBaseDial{}}, cmds)

	_, ok := s.Wind()
	assert.False(t, ok)
}

func TestClickRightOfCenter(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	s, _ := e.Init()

	p := r2.Vec{X: 251.5, Y: 150.5}
	s, cmds := e.Reduce(s, Click{Point: p})
	require.True(t, s.HasAngle)
	assert.Equal(t, 0.0, s.Angle)
	assert.Equal(t, p, s.Click)

	require.Len(t, cmds, 2)
	assert.Equal(t, DrawClickMarker{Point: p}, cmds[0])
	head, ok := cmds[1].(DrawArrowhead)
	require.True(t, ok)
	assert.InDelta(t, 251.5, head.Start.X, eps)
	assert.InDelta(t, 150.5, head.Start.Y, eps)

	v, ok := s.Wind()
	require.True(t, ok)
	assert.InDelta(t, 5, v.X, eps)
	assert.InDelta(t, 0, v.Y, eps)
}

func TestClickAboveCenter(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	s, _ := e.Init()

	s, cmds := e.Reduce(s, Click{Point: r2.Vec{X: 150.5, Y: 49.5}})
	assert.InDelta(t, math.Pi/2, s.Angle, eps)

	// quadrant 2 by tie-break, so the full rotation is π - π/2
	head := cmds[1].(DrawArrowhead)
	want := ArrowheadPoints(math.Pi/2, 101, center)
	assert.InDelta(t, want.Tip.X, head.Start.X, eps)
	assert.InDelta(t, 49.5, head.Start.Y, eps)
	assert.InDelta(t, want.Wing1.X, head.Wing1.X, eps)
	assert.InDelta(t, want.Wing2.Y, head.Wing2.Y, eps)
}

func TestClickAnchorVariant(t *testing.T) {
	e := newTestEngine(t, Options{AnchorAtClick: true})
	s, _ := e.Init()

	p := r2.Vec{X: 170, Y: 120}
	_, cmds := e.Reduce(s, Click{Point: p})
	head := cmds[1].(DrawArrowhead)
	assert.Equal(t, p, head.Start)

	rotation := ToFullRotation(ComputeAngle(p, center), UpRight)
	want := ArrowheadPoints(rotation, 101, center)
	assert.InDelta(t, want.Wing1.X, head.Wing1.X, eps)
	assert.InDelta(t, want.Wing1.Y, head.Wing1.Y, eps)
	assert.InDelta(t, want.Wing2.X, head.Wing2.X, eps)
	assert.InDelta(t, want.Wing2.Y, head.Wing2.Y, eps)
}

func TestClickOverwritesAngle(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	s, _ := e.Init()
	s, _ = e.Reduce(s, Click{Point: r2.Vec{X: 251.5, Y: 150.5}})
	s, _ = e.Reduce(s, Click{Point: r2.Vec{X: 200.5, Y: 200.5}})
	assert.InDelta(t, math.Pi/4, s.Angle, eps)
	assert.Equal(t, r2.Vec{X: 200.5, Y: 200.5}, s.Click)
}

func TestWindUsesAcuteAngle(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 10})
	s, _ := e.Init()

	// down-left: full rotation is 5π/4 but the vector stays in the first quadrant
	s, _ = e.Reduce(s, Click{Point: r2.Vec{X: 100.5, Y: 200.5}})
	v, ok := s.Wind()
	require.True(t, ok)
	assert.InDelta(t, 10*math.Cos(math.Pi/4), v.X, eps)
	assert.InDelta(t, 10*math.Sin(math.Pi/4), v.Y, eps)
}

func TestMagnitudeInput(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	s, _ := e.Init()
	s, _ = e.Reduce(s, Click{Point: r2.Vec{X: 150.5, Y: 49.5}})

	s, cmds := e.Reduce(s, MagnitudeInput{Value: 12, Present: true})
	assert.Empty(t, cmds)
	v, ok := s.Wind()
	require.True(t, ok)
	assert.InDelta(t, 0, v.X, eps)
	assert.InDelta(t, 12, v.Y, eps)

	s, _ = e.Reduce(s, MagnitudeInput{Value: 99, Present: false})
	assert.False(t, s.HasMagnitude)
	_, ok = s.Wind()
	assert.False(t, ok)
	// the angle survives a blank magnitude
	assert.True(t, s.HasAngle)
}

func TestMagnitudeBeforeClick(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	s, _ := e.Init()
	s, _ = e.Reduce(s, MagnitudeInput{Value: 3, Present: true})
	_, ok := s.Wind()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	initial, _ := e.Init()

	s := initial
	s, _ = e.Reduce(s, Click{Point: r2.Vec{X: 10, Y: 20}})
	s, _ = e.Reduce(s, MagnitudeInput{Present: false})
	s, _ = e.Reduce(s, Click{Point: r2.Vec{X: 290, Y: 280}})

	s, cmds := e.Reduce(s, Reset{})
	assert.Equal(t, initial, s)
	assert.Equal(t, []Command{ClearSurface{}, DrawBaseDial{}}, cmds)

	twice, cmds2 := e.Reduce(s, Reset{})
	assert.Equal(t, s, twice)
	assert.Equal(t, cmds, cmds2)
}

func TestDisplay(t *testing.T) {
	e := newTestEngine(t, Options{DefaultMagnitude: 5})
	s, _ := e.Init()

	d := s.Display(false)
	assert.Equal(t, Display{Angle: "-", Coords: "x: - y: -", WindX: "-", WindY: "-"}, d)

	s, _ = e.Reduce(s, Click{Point: r2.Vec{X: 150.5, Y: 49.5}})
	d = s.Display(false)
	assert.Equal(t, "1.6", d.Angle)
	assert.Equal(t, "x: 150.5 y: 49.5", d.Coords)
	assert.Equal(t, "0.0", d.WindX)
	assert.Equal(t, "5.0", d.WindY)

	assert.Equal(t, "90.0", s.Display(true).Angle)

	s, _ = e.Reduce(s, MagnitudeInput{Present: false})
	d = s.Display(false)
	assert.Equal(t, "1.6", d.Angle)
	assert.Equal(t, "-", d.WindX)
	assert.Equal(t, "-", d.WindY)

	s, _ = e.Reduce(s, Reset{})
	assert.Equal(t, Display{Angle: "-", Coords: "x: - y: -", WindX: "-", WindY: "-"}, s.Display(false))
}

func TestDisplayLines(t *testing.T) {
	d := Display{Angle: "0.8", Coords: "x: 200 y: 100", WindX: "3.5", WindY: "3.5"}
	assert.Equal(t, []string{"angle: 0.8", "x: 200 y: 100", "wind x: 3.5", "wind y: 3.5"}, d.Lines())
}

func TestParseMagnitude(t *testing.T) {
	in, err := ParseMagnitude(" 7.5 ")
	require.NoError(t, err)
	assert.Equal(t, MagnitudeInput{Value: 7.5, Present: true}, in)

	in, err = ParseMagnitude("")
	require.NoError(t, err)
	assert.False(t, in.Present)

	in, err = ParseMagnitude("   ")
	require.NoError(t, err)
	assert.False(t, in.Present)

	for _, bad := range []string{"abc", "NaN", "Inf", "5 knots"} {
		_, err = ParseMagnitude(bad)
		assert.Error(t, err, bad)
	}
}
