package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/convsim/internal/session"
	"github.com/san-kum/convsim/internal/signal"
)

const (
	DefaultSpeed = 1.0
	DefaultX     = "rect(t)"
	DefaultH     = "rect(t)"
)

// Config is the flat serialized record of a convolution session: both
// expressions, domain mode, shift, speed, style, and preset identifier.
type Config struct {
	Mode        string  `yaml:"mode"`
	X           string  `yaml:"x"`
	H           string  `yaml:"h"`
	Shift       float64 `yaml:"shift"`
	Speed       float64 `yaml:"speed"`
	Style       string  `yaml:"style,omitempty"`
	Preset      string  `yaml:"preset,omitempty"`
	Description string  `yaml:"description,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:  string(signal.Continuous),
		X:     DefaultX,
		H:     DefaultH,
		Speed: DefaultSpeed,
		Style: string(session.StyleMathematical),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Check validates the record's enumerated fields.
func (c *Config) Check() error {
	if !c.Domain().Valid() {
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("config: speed must be positive, got %f", c.Speed)
	}
	switch session.Style(c.Style) {
	case session.StyleMathematical, session.StyleBlockStep, "":
	default:
		return fmt.Errorf("config: unknown style %q", c.Style)
	}
	return nil
}

// Domain returns the mode as a signal domain.
func (c *Config) Domain() signal.Domain {
	return signal.Domain(c.Mode)
}

// NewSession builds a ready session from the record.
func (c *Config) NewSession() (*session.Session, error) {
	s := session.New(c.Domain())
	if err := s.SetExpressions(c.X, c.H); err != nil {
		return nil, err
	}
	if c.Style != "" {
		s.SetStyle(session.Style(c.Style))
	}
	if c.Preset != "" {
		s.SetPreset(c.Preset)
	}
	if c.Speed > 0 {
		s.SetSpeed(c.Speed)
	}
	if c.Shift != 0 {
		s.SetShift(c.Shift)
	}
	return s, nil
}

// FromSession snapshots a session back into a flat record.
func FromSession(s *session.Session) *Config {
	x, h := s.Expressions()
	status := s.Status()
	return &Config{
		Mode:   string(s.Mode()),
		X:      x,
		H:      h,
		Shift:  status.Shift,
		Speed:  status.Speed,
		Style:  string(s.Style()),
		Preset: s.Preset(),
	}
}
