package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/gravel/internal/gravel"
	"github.com/san-kum/gravel/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultName      = "gravel"
	DefaultOutputDir = "output"
)

// ErrInvalid is returned by Validate for values a sketch cannot draw.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Name         string     `yaml:"name"`
	OutputDir    string     `yaml:"output_dir"`
	Grid         GridConfig `yaml:"grid"`
	Displacement float64    `yaml:"displacement"`
	Rotation     float64    `yaml:"rotation"`
	Seed         *uint64    `yaml:"seed,omitempty"`
	Background   string     `yaml:"background,omitempty"`
	Terminal     TermConfig `yaml:"terminal"`
}

type GridConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Pitch     float64 `yaml:"pitch"`
	Margin    float64 `yaml:"margin"`
	LineWidth float64 `yaml:"line_width"`
}

// TermConfig sizes the braille canvas of the terminal view, in characters.
type TermConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:         DefaultName,
		OutputDir:    DefaultOutputDir,
		Displacement: gravel.DefaultDisplacement,
		Rotation:     gravel.DefaultRotation,
		Grid: GridConfig{
			Rows:      gravel.DefaultRows,
			Cols:      gravel.DefaultCols,
			Pitch:     render.DefaultPitch,
			Margin:    render.DefaultMargin,
			LineWidth: render.DefaultLineWidth,
		},
		Terminal: TermConfig{Width: 60, Height: 30},
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
	if err := cfg.Validate(); err != nil {
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

func (c *Config) Validate() error {
	switch {
	case c.Grid.Rows <= 0 || c.Grid.Cols <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Grid.Rows, c.Grid.Cols)
	case c.Grid.Pitch <= 0:
		return fmt.Errorf("%w: pitch %g", ErrInvalid, c.Grid.Pitch)
	case c.Grid.Margin < 0 || c.Grid.LineWidth < 0:
		return fmt.Errorf("%w: margin %g, line width %g", ErrInvalid, c.Grid.Margin, c.Grid.LineWidth)
	case c.Displacement < 0 || c.Rotation < 0:
		return fmt.Errorf("%w: adjustments must not be negative", ErrInvalid)
	case c.Seed != nil && *c.Seed >= gravel.SeedSpace:
		return fmt.Errorf("%w: seed %d outside [0, %d)", ErrInvalid, *c.Seed, gravel.SeedSpace)
	case c.Background != "" && gravel.SwatchIndex(c.Background) < 0:
		return fmt.Errorf("%w: unknown background %q", ErrInvalid, c.Background)
	case c.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalid)
	}
	return nil
}

func (c *Config) Layout() render.Layout {
	return render.Layout{
		Rows:      c.Grid.Rows,
		Cols:      c.Grid.Cols,
		Pitch:     c.Grid.Pitch,
		Margin:    c.Grid.Margin,
		LineWidth: c.Grid.LineWidth,
	}
}

// NewState builds a sketch state from the config. Unset seed and background
// are drawn from ui.
func (c *Config) NewState(ui gravel.Chooser) *gravel.State {
	st := gravel.NewState(c.Grid.Rows, c.Grid.Cols, ui)
	st.Displacement = c.Displacement
	st.Rotation = c.Rotation
	if c.Seed != nil {
		st.Seed = *c.Seed
	}
	if i := gravel.SwatchIndex(c.Background); i >= 0 {
		st.Background = i
	}
	st.Recompute()
	return st
}
