// Wind Dial
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hhkbp2/go-logging"

	"github.com/iburimskiy/wind-dial/internal/config"
	"github.com/iburimskiy/wind-dial/internal/game"
	"github.com/iburimskiy/wind-dial/internal/headless"
)

func main() {
	parser := argparse.NewParser("winddial", "Click a dial to set wind direction and read off its components")

	configPath := parser.String("c", "config", &argparse.Options{
		Help: "YAML settings file"})

	logLevel := parser.Selector("", "log", config.LogLevels, &argparse.Options{
		Help: "Log level (default from settings, ERROR)"})

	anchor := parser.Selector("", "anchor", []string{config.AnchorTip, config.AnchorClick}, &argparse.Options{
		Help: "Start the arrowhead at the dial edge (tip) or at the click point (click)"})

	unit := parser.Selector("", "unit", []string{config.UnitRadians, config.UnitDegrees}, &argparse.Options{
		Help: "Angle display unit"})

	runCmd := parser.NewCommand("run", "Open the interactive dial window")

	scale := runCmd.Int("", "scale", &argparse.Options{
		Help: "Window scale factor"})

	mute := runCmd.Flag("", "mute", &argparse.Options{
		Help: "Do not play the click tone"})

	renderCmd := parser.NewCommand("render", "Replay clicks without a window and write the dial as PNG")

	output := renderCmd.String("o", "output", &argparse.Options{
		Required: true,
		Help:     "PNG output path"})

	clicks := renderCmd.StringList("", "click", &argparse.Options{
		Help: "Click point as x,y in surface pixels; repeat for several clicks"})

	magnitude := renderCmd.String("m", "magnitude", &argparse.Options{
		Help: "Magnitude applied after the clicks"})

	noMagnitude := renderCmd.Flag("", "no-magnitude", &argparse.Options{
		Help: "Clear the magnitude after the clicks"})

	reset := renderCmd.Flag("", "reset", &argparse.Options{
		Help: "Reset the dial after everything else"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		fail(err)
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	if *anchor != "" {
		settings.ArrowAnchor = *anchor
	}
	if *unit != "" {
		settings.AngleUnit = *unit
	}

	logger := logging.GetLogger("winddial")
	switch settings.LogLevel {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	default:
		logger.SetLevel(logging.LevelError)
	}

	if renderCmd.Happened() {
		script, err := headless.NewScript(*clicks, *magnitude, *noMagnitude, *reset)
		if err != nil {
			fail(err)
		}
		if err := renderPNG(settings, script, *output); err != nil {
			fail(err)
		}
		logger.Infof("wrote %s", *output)
		return
	}

	if *scale > 0 {
		settings.Scale = *scale
	}
	if *mute {
		settings.Sound = false
	}
	if err := settings.Validate(); err != nil {
		fail(err)
	}

	ebiten.SetWindowSize(config.WindowWidth*settings.Scale, config.WindowHeight*settings.Scale)
	ebiten.SetWindowTitle("Wind Dial - click to set direction, M: magnitude, R: reset, Esc/Q: quit")

	g, err := game.NewGame(settings)
	if err != nil {
		fail(err)
	}
	logger.Infof("starting dial window at scale %d", settings.Scale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err)
	}
}

func renderPNG(settings config.Settings, script headless.Script, path string) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	res, err := headless.Run(settings, script)
	if err != nil {
		return err
	}
	for _, line := range res.Display.Lines() {
		fmt.Println(line)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := res.Canvas.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}

func fail(err error) {
	logging.GetLogger("winddial").Errorf("%v", err)
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
