package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zucenko/mazeball/model"
)

type Config struct {
	Rows, Cols    int
	Width, Height float64

	Seed  int64       // Optional (0 = Random)
	Start *model.Cell // Optional carve start (nil = Random)

	Geometry Geometry // Optional (zero = DefaultGeometry)
}

type Result struct {
	Grid   *model.Grid
	Layout *model.Layout
	Start  model.Cell
	Seed   int64
}

// Generate carves a new maze and translates it into a play area of
// Width x Height.
func Generate(cfg Config) (Result, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Result{}, fmt.Errorf("%w: play area %.0fx%.0f", model.ErrInvalidDimension, cfg.Width, cfg.Height)
	}
	grid, err := model.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return Result{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var start model.Cell
	if cfg.Start != nil {
		start = *cfg.Start
	} else {
		start = model.Cell{Row: rng.Intn(cfg.Rows), Col: rng.Intn(cfg.Cols)}
	}
	if err := Carve(grid, start.Row, start.Col, rng); err != nil {
		return Result{}, err
	}

	geo := cfg.Geometry
	if geo == (Geometry{}) {
		geo = DefaultGeometry()
	}
	layout := Translate(grid, cfg.Width/float64(cfg.Cols), cfg.Height/float64(cfg.Rows), geo)
	return Result{Grid: grid, Layout: layout, Start: start, Seed: seed}, nil
}
