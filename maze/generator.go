package maze

import (
	"fmt"

	"github.com/zucenko/mazeball/model"
)

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Name() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("n/a:%d", d)
	}
}

type neighbour struct {
	row, col int
	dir      Direction
}

// frame is one cell on the carve stack with its shuffled neighbours and the
// index of the next neighbour to try.
type frame struct {
	row, col   int
	neighbours [4]neighbour
	next       int
}

// Carve runs the randomized depth-first backtracker from (startRow,startCol),
// opening edges until every cell reachable from the start is visited. The
// result is a spanning tree of the grid. Random draws and carve order are those
// of the recursive form; the stack only replaces the call depth.
func Carve(g *model.Grid, startRow, startCol int, rng Rand) error {
	visited, err := g.IsVisited(startRow, startCol)
	if err != nil {
		return fmt.Errorf("carve start: %w", err)
	}
	if visited {
		return nil
	}

	start, err := enter(g, startRow, startCol, rng)
	if err != nil {
		return err
	}
	stack := []frame{start}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.neighbours) {
			stack = stack[:len(stack)-1]
			continue
		}
		n := f.neighbours[f.next]
		f.next++

		if !g.Contains(n.row, n.col) {
			continue
		}
		if seen, _ := g.IsVisited(n.row, n.col); seen {
			continue
		}
		if err := open(g, f.row, f.col, n.dir); err != nil {
			return err
		}
		next, err := enter(g, n.row, n.col, rng)
		if err != nil {
			return err
		}
		stack = append(stack, next)
	}
	return nil
}

func enter(g *model.Grid, row, col int, rng Rand) (frame, error) {
	if err := g.MarkVisited(row, col); err != nil {
		return frame{}, err
	}
	f := frame{
		row: row,
		col: col,
		neighbours: [4]neighbour{
			{row - 1, col, Up},
			{row, col + 1, Right},
			{row + 1, col, Down},
			{row, col - 1, Left},
		},
	}
	Shuffle(rng, f.neighbours[:])
	return f, nil
}

// open removes the wall crossed when leaving (row,col) in direction d.
func open(g *model.Grid, row, col int, d Direction) error {
	switch d {
	case Left:
		return g.OpenVertical(row, col-1)
	case Right:
		return g.OpenVertical(row, col)
	case Up:
		return g.OpenHorizontal(row-1, col)
	case Down:
		return g.OpenHorizontal(row, col)
	}
	return fmt.Errorf("unknown direction %s", d.Name())
}
