package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Arrow anchors. AnchorClick starts the arrowhead path at the raw click
// point instead of the on-circle tip.
const (
	AnchorTip   = "tip"
	AnchorClick = "click"
)

// Angle display units
const (
	UnitRadians = "radians"
	UnitDegrees = "degrees"
)

var LogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}

// Magnitude bounds the slider and holds the value restored on reset.
type Magnitude struct {
	Default float64 `yaml:"default"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// Settings are the user-tunable options, read from an optional YAML file
// and overridden by command line flags.
type Settings struct {
	Magnitude   Magnitude `yaml:"magnitude"`
	ArrowAnchor string    `yaml:"arrow_anchor"`
	AngleUnit   string    `yaml:"angle_unit"`
	Sound       bool      `yaml:"sound"`
	Scale       int       `yaml:"scale"`
	LogLevel    string    `yaml:"log_level"`
}

func DefaultSettings() Settings {
	return Settings{
		Magnitude: Magnitude{
			Default: 5,
			Min:     0,
			Max:     20,
			Step:    0.5,
		},
		ArrowAnchor: AnchorTip,
		AngleUnit:   UnitRadians,
		Sound:       true,
		Scale:       2,
		LogLevel:    "ERROR",
	}
}

// LoadSettings reads path over the defaults. An empty path returns the
// defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	m := s.Magnitude
	if m.Max <= m.Min {
		return fmt.Errorf("%w: magnitude max %g must exceed min %g", ErrInvalidSettings, m.Max, m.Min)
	}
	if m.Default < m.Min || m.Default > m.Max {
		return fmt.Errorf("%w: magnitude default %g outside [%g, %g]", ErrInvalidSettings, m.Default, m.Min, m.Max)
	}
	if m.Step < 0 {
		return fmt.Errorf("%w: negative magnitude step %g", ErrInvalidSettings, m.Step)
	}
	switch s.ArrowAnchor {
	case AnchorTip, AnchorClick:
	default:
		return fmt.Errorf("%w: arrow_anchor %q", ErrInvalidSettings, s.ArrowAnchor)
	}
	switch s.AngleUnit {
	case UnitRadians, UnitDegrees:
	default:
		return fmt.Errorf("%w: angle_unit %q", ErrInvalidSettings, s.AngleUnit)
	}
	if s.Scale < 1 {
		return fmt.Errorf("%w: scale %d", ErrInvalidSettings, s.Scale)
	}
	if !validLogLevel(s.LogLevel) {
		return fmt.Errorf("%w: log_level %q", ErrInvalidSettings, s.LogLevel)
	}
	return nil
}

func validLogLevel(level string) bool {
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}
