package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/zucenko/mazeball/game"
	"github.com/zucenko/mazeball/maze"
	"github.com/zucenko/mazeball/model"
)

type Config struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Seed    int64   `yaml:"seed"`
	// MazeFile points to a maze in text layout served instead of a generated one.
	MazeFile string `yaml:"maze_file"`

	Gravity      float64 `yaml:"gravity"`
	VelocityStep float64 `yaml:"velocity_step"`
	FrictionAir  float64 `yaml:"friction_air"`
	TickRate     int     `yaml:"tick_rate"`

	WallThickness     float64 `yaml:"wall_thickness"`
	BoundaryThickness float64 `yaml:"boundary_thickness"`
	GoalScale         float64 `yaml:"goal_scale"`
	BallScale         float64 `yaml:"ball_scale"`

	GateInputAfterWin bool   `yaml:"gate_input_after_win"`
	Port              string `yaml:"port"`
}

func Default() Config {
	geo := maze.DefaultGeometry()
	opts := game.DefaultOptions()
	return Config{
		Rows:              6,
		Columns:           7,
		Width:             800,
		Height:            600,
		Gravity:           opts.Gravity,
		VelocityStep:      opts.VelocityStep,
		FrictionAir:       0.01,
		TickRate:          60,
		WallThickness:     geo.WallThickness,
		BoundaryThickness: geo.BoundaryThickness,
		GoalScale:         geo.GoalScale,
		BallScale:         geo.BallScale,
		GateInputAfterWin: opts.GateInput,
		Port:              "8080",
	}
}

// Read decodes YAML over the defaults.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Default(), err
	}
	defer file.Close()
	return Read(file)
}

// ApplyEnv overrides the port and maze dimensions from PORT, MAZE_ROWS,
// MAZE_COLUMNS and MAZE_SEED.
func (c *Config) ApplyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	for name, dst := range map[string]*int{"MAZE_ROWS": &c.Rows, "MAZE_COLUMNS": &c.Columns} {
		s := os.Getenv(name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = v
	}
	if s := os.Getenv("MAZE_SEED"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("MAZE_SEED: %w", err)
		}
		c.Seed = v
	}
	return c.Validate()
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d cells", model.ErrInvalidDimension, c.Rows, c.Columns)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: play area %.0fx%.0f", model.ErrInvalidDimension, c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.FrictionAir < 0 || c.FrictionAir >= 1 {
		return fmt.Errorf("friction_air must be in [0,1), got %v", c.FrictionAir)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"wall_thickness", c.WallThickness},
		{"boundary_thickness", c.BoundaryThickness},
		{"goal_scale", c.GoalScale},
		{"ball_scale", c.BallScale},
		{"velocity_step", c.VelocityStep},
	} {
		if f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", f.name, f.value)
		}
	}
	return nil
}

func (c Config) Geometry() maze.Geometry {
	return maze.Geometry{
		WallThickness:     c.WallThickness,
		BoundaryThickness: c.BoundaryThickness,
		GoalScale:         c.GoalScale,
		BallScale:         c.BallScale,
	}
}

func (c Config) Options() game.Options {
	return game.Options{
		Gravity:      c.Gravity,
		VelocityStep: c.VelocityStep,
		GateInput:    c.GateInputAfterWin,
	}
}

func (c Config) Maze() maze.Config {
	return maze.Config{
		Rows:     c.Rows,
		Cols:     c.Columns,
		Width:    c.Width,
		Height:   c.Height,
		Seed:     c.Seed,
		Geometry: c.Geometry(),
	}
}

func (c Config) Log() {
	log.WithFields(log.Fields{
		"rows":    c.Rows,
		"columns": c.Columns,
		"width":   c.Width,
		"height":  c.Height,
		"seed":    c.Seed,
		"maze":    c.MazeFile,
	}).Info("config")
}
