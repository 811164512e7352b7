package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wind-dial/internal/config"
	"github.com/iburimskiy/wind-dial/internal/dial"
	"github.com/iburimskiy/wind-dial/internal/render"
)

// askMagnitude prompts for a typed magnitude. ok is false when the dialog
// was dismissed.
func (g *Game) askMagnitude() (in dial.MagnitudeInput, ok bool, err error) {
	current := ""
	if g.state.HasMagnitude {
		current = fmt.Sprintf("%g", g.state.Magnitude)
	}
	text, err := zenity.Entry(
		"Wind magnitude (leave blank for none)",
		zenity.Title("Set Magnitude"),
		zenity.EntryText(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return dial.MagnitudeInput{}, false, nil
		}
		return dial.MagnitudeInput{}, false, err
	}
	in, err = dial.ParseMagnitude(text)
	if err != nil {
		return dial.MagnitudeInput{}, false, err
	}
	return in, true, nil
}

// exportDialog asks for a destination and writes the surface there as PNG.
func (g *Game) exportDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Dial"),
		zenity.Filename("wind-dial.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.exportPNG(filename); err != nil {
		return err
	}
	log.Infof("exported dial to %s", filename)
	return nil
}

// exportPNG replays the commands since the last reset onto an image canvas.
func (g *Game) exportPNG(path string) error {
	c := render.NewImageCanvas(config.SurfaceWidth, config.SurfaceHeight, g.renderer.Style.Background)
	g.renderer.Execute(c, g.history)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := c.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: %w", err)
	}
	return f.Close()
}
