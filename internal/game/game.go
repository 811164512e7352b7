// Package game hosts the wind dial in an ebiten window.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/wind-dial/internal/config"
	"github.com/iburimskiy/wind-dial/internal/dial"
	"github.com/iburimskiy/wind-dial/internal/render"
	"github.com/iburimskiy/wind-dial/internal/widget"
)

var log = logging.GetLogger("winddial")

var surfaceRect = widget.Rect{X: 0, Y: 0, W: config.SurfaceWidth - 1, H: config.SurfaceHeight - 1}

type Game struct {
	engine   *dial.Engine
	renderer *render.Renderer
	settings config.Settings

	// session
	state   dial.State
	history []dial.Command // commands drawn since the last reset

	// drawing surface
	surface *ebiten.Image
	canvas  surfaceCanvas
	started bool

	// controls
	slider        widget.Slider
	resetButton   widget.Rect
	clearButton   widget.Rect
	sliderDrag    bool
	pressedButton *widget.Rect

	// input edge detection
	prevKey map[ebiten.Key]bool

	sound   *clickSound
	lastErr error
}

func NewGame(s config.Settings) (*Game, error) {
	engine, err := dial.NewEngine(dial.DefaultConfig(), dial.Options{
		AnchorAtClick:    s.ArrowAnchor == config.AnchorClick,
		DefaultMagnitude: s.Magnitude.Default,
	})
	if err != nil {
		return nil, err
	}
	surface := ebiten.NewImage(config.SurfaceWidth, config.SurfaceHeight)
	return &Game{
		engine:   engine,
		renderer: render.NewRenderer(engine.Config()),
		settings: s,
		surface:  surface,
		canvas:   surfaceCanvas{img: surface},
		slider: widget.Slider{
			Rect: widget.Rect{X: config.SliderX, Y: config.SliderY, W: config.SliderWidth, H: config.SliderHeight},
			Min:  s.Magnitude.Min,
			Max:  s.Magnitude.Max,
			Step: s.Magnitude.Step,
		},
		resetButton: widget.Rect{X: config.ResetX, Y: config.ButtonY, W: config.ButtonWidth, H: config.ButtonHeight},
		clearButton: widget.Rect{X: config.ClearX, Y: config.ButtonY, W: config.ButtonWidth, H: config.ButtonHeight},
		prevKey:     map[ebiten.Key]bool{},
		sound:       newClickSound(s.Sound),
	}, nil
}

// dispatch runs one event through the engine and draws the result.
func (g *Game) dispatch(ev dial.Event) {
	next, cmds := g.engine.Reduce(g.state, ev)
	g.state = next
	g.draw(cmds)
	log.Debugf("event %T%+v -> %+v", ev, ev, g.state.Display(g.degrees()))
}

func (g *Game) draw(cmds []dial.Command) {
	if len(cmds) == 0 {
		return
	}
	if _, ok := cmds[0].(dial.ClearSurface); ok {
		g.history = append(g.history[:0], cmds[1:]...)
	} else {
		g.history = append(g.history, cmds...)
	}
	g.renderer.Execute(g.canvas, cmds)
}

func (g *Game) degrees() bool {
	return g.settings.AngleUnit == config.UnitDegrees
}

func (g *Game) Update() error {
	if !g.started {
		state, cmds := g.engine.Init()
		g.state = state
		g.draw(append([]dial.Command{dial.ClearSurface{}}, cmds...))
		g.started = true
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case surfaceRect.Contains(mouseX, mouseY):
			g.dispatch(dial.Click{Point: r2.Vec{X: float64(mouseX), Y: float64(mouseY)}})
			g.sound.play()
		case g.slider.Contains(mouseX, mouseY):
			g.sliderDrag = true
		case g.resetButton.Contains(mouseX, mouseY):
			g.pressedButton = &g.resetButton
		case g.clearButton.Contains(mouseX, mouseY):
			g.pressedButton = &g.clearButton
		}
	}

	// Slider drag emits an input only when the value moves
	if g.sliderDrag {
		v := g.slider.ValueAt(mouseX)
		if !g.state.HasMagnitude || v != g.state.Magnitude {
			g.dispatch(dial.MagnitudeInput{Value: v, Present: true})
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressedButton != nil && g.pressedButton.Contains(mouseX, mouseY) {
			g.clickButton(g.pressedButton)
		}
		g.pressedButton = nil
		g.sliderDrag = false
	}

	if justPressed(ebiten.KeyR) {
		g.dispatch(dial.Reset{})
	}
	if justPressed(ebiten.KeyBackspace) || justPressed(ebiten.KeyDelete) {
		g.dispatch(dial.MagnitudeInput{})
	}
	if justPressed(ebiten.KeyM) {
		in, ok, err := g.askMagnitude()
		g.report(err)
		if ok {
			g.dispatch(in)
		}
	}
	if justPressed(ebiten.KeyS) {
		g.report(g.exportDialog())
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) clickButton(b *widget.Rect) {
	switch b {
	case &g.resetButton:
		g.dispatch(dial.Reset{})
	case &g.clearButton:
		g.dispatch(dial.MagnitudeInput{})
	}
}

// report keeps the last error for the status line.
func (g *Game) report(err error) {
	if err == nil {
		return
	}
	log.Errorf("%v", err)
	g.lastErr = err
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)
	screen.DrawImage(g.surface, &ebiten.DrawImageOptions{})

	// Draw displays
	d := g.state.Display(g.degrees())
	unit := "rad"
	if g.degrees() {
		unit = "deg"
	}
	base := config.SurfaceHeight + 4
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("angle: %s %s   %s", d.Angle, unit, d.Coords), 8, base)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("wind x: %s   wind y: %s", d.WindX, d.WindY), 8, base+16)

	g.drawSlider(screen)
	g.drawButton(screen, g.resetButton, "Reset")
	g.drawButton(screen, g.clearButton, "Clear mag")

	status := "Click the dial | M: magnitude  S: export PNG  R: reset  Q: quit"
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 4, config.WindowHeight-18)
}

func (g *Game) drawSlider(screen *ebiten.Image) {
	s := g.slider
	label := "magnitude: " + dial.Placeholder
	if g.state.HasMagnitude {
		label = fmt.Sprintf("magnitude: %.1f", g.state.Magnitude)
	}
	ebitenutil.DebugPrintAt(screen, label, s.X, s.Y-18)

	midY := float32(s.Y) + float32(s.H)/2
	vector.StrokeLine(screen, float32(s.X), midY, float32(s.X+s.W), midY, 2, config.BorderColor, false)
	if !g.state.HasMagnitude {
		return
	}
	vector.DrawFilledCircle(screen, float32(s.KnobX(g.state.Magnitude)), midY, float32(s.H)/2, config.ControlColor, true)
}

func (g *Game) drawButton(screen *ebiten.Image, b widget.Rect, text string) {
	mouseX, mouseY := ebiten.CursorPosition()
	bgColor := config.ControlColor
	if b.Contains(mouseX, mouseY) {
		bgColor = config.ControlHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bgColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, config.BorderColor, false)

	textWidth := len(text) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, text, b.X+(b.W-textWidth)/2, b.Y+2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
