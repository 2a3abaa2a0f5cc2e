package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/maze"
	"github.com/zucenko/mazeball/model"
)

// largest maze served as text
const maxExportCells = 1 << 20

// HandleMazeText carves a maze of the requested size and replies with its
// text layout. The seed query parameter makes the answer repeatable.
func (s *GameServer) HandleMazeText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, errRows := strconv.Atoi(way.Param(r.Context(), "rows"))
		cols, errCols := strconv.Atoi(way.Param(r.Context(), "columns"))
		if errRows != nil || errCols != nil {
			http.Error(w, "rows and columns must be numbers", HTTP_BAD_REQUEST)
			return
		}
		// each side first so the product cannot overflow
		if rows > maxExportCells || cols > maxExportCells || rows*cols > maxExportCells {
			http.Error(w, "maze too large", HTTP_BAD_REQUEST)
			return
		}
		cfg := s.Config.Maze()
		cfg.Rows, cfg.Cols = rows, cols
		cfg.Seed = 0
		if q := r.URL.Query().Get("seed"); q != "" {
			seed, err := strconv.ParseInt(q, 10, 64)
			if err != nil {
				http.Error(w, "seed must be a number", HTTP_BAD_REQUEST)
				return
			}
			cfg.Seed = seed
		}

		res, err := maze.Generate(cfg)
		if errors.Is(err, model.ErrInvalidDimension) {
			http.Error(w, err.Error(), HTTP_BAD_REQUEST)
			return
		} else if err != nil {
			log.Errorf("HandleMazeText %v", err)
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		log.WithFields(log.Fields{"rows": rows, "columns": cols, "seed": res.Seed}).Info("HandleMazeText")

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Maze-Seed", strconv.FormatInt(res.Seed, 10))
		if err := model.WriteText(w, res.Grid); err != nil {
			log.Warnf("HandleMazeText write %v", err)
		}
	}
}
