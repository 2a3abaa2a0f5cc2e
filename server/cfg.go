package server

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/maze"
	"github.com/zucenko/mazeball/model"
)

// Load builds the layout of a new session: the maze file when one is
// configured, a freshly carved maze otherwise.
func Load(cfg config.Config) (layout *model.Layout, seed int64, e error) {
	if cfg.MazeFile == "" {
		res, err := maze.Generate(cfg.Maze())
		if err != nil {
			return nil, 0, err
		}
		return res.Layout, res.Seed, nil
	}

	file, fileErr := os.Open(cfg.MazeFile)
	if fileErr != nil {
		e = fileErr
		return
	}
	defer file.Close()
	grid, err := model.ReadText(file)
	if err != nil {
		log.Printf("failed reading maze %s: %v", cfg.MazeFile, err)
		return nil, 0, err
	}
	unitW := cfg.Width / float64(grid.Columns())
	unitH := cfg.Height / float64(grid.Rows())
	return maze.Translate(grid, unitW, unitH, cfg.Geometry()), 0, nil
}
