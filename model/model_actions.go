package model

import "fmt"

func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols}
	// cells
	g.visited = make([][]bool, rows)
	for r := range g.visited {
		g.visited[r] = make([]bool, cols)
	}
	// edges, all closed
	g.vertical = make([][]bool, rows)
	for r := range g.vertical {
		g.vertical[r] = make([]bool, cols-1)
	}
	g.horizontal = make([][]bool, rows-1)
	for r := range g.horizontal {
		g.horizontal[r] = make([]bool, cols)
	}
	return g, nil
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.cols }

func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) IsVisited(row, col int) (bool, error) {
	if !g.Contains(row, col) {
		return false, outOfBounds(row, col)
	}
	return g.visited[row][col], nil
}

func (g *Grid) MarkVisited(row, col int) error {
	if !g.Contains(row, col) {
		return outOfBounds(row, col)
	}
	g.visited[row][col] = true
	return nil
}

// OpenVertical removes the wall between (row,col) and (row,col+1).
func (g *Grid) OpenVertical(row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols-1 {
		return fmt.Errorf("%w: vertical edge %d,%d", ErrOutOfBounds, row, col)
	}
	g.vertical[row][col] = true
	return nil
}

// OpenHorizontal removes the wall between (row,col) and (row+1,col).
func (g *Grid) OpenHorizontal(row, col int) error {
	if row < 0 || row >= g.rows-1 || col < 0 || col >= g.cols {
		return fmt.Errorf("%w: horizontal edge %d,%d", ErrOutOfBounds, row, col)
	}
	g.horizontal[row][col] = true
	return nil
}

func (g *Grid) VerticalOpen(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols-1 && g.vertical[row][col]
}

func (g *Grid) HorizontalOpen(row, col int) bool {
	return row >= 0 && row < g.rows-1 && col >= 0 && col < g.cols && g.horizontal[row][col]
}

// Edges is the number of interior edges, open or closed.
func (g *Grid) Edges() int {
	return g.rows*(g.cols-1) + (g.rows-1)*g.cols
}

func (g *Grid) OpenEdges() int {
	n := 0
	for _, row := range g.vertical {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	for _, row := range g.horizontal {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	return n
}

// Neighbours lists the cells reachable from (row,col) through open edges.
func (g *Grid) Neighbours(row, col int) []Cell {
	cells := make([]Cell, 0, 4)
	if g.HorizontalOpen(row-1, col) {
		cells = append(cells, Cell{row - 1, col})
	}
	if g.VerticalOpen(row, col) {
		cells = append(cells, Cell{row, col + 1})
	}
	if g.HorizontalOpen(row, col) {
		cells = append(cells, Cell{row + 1, col})
	}
	if g.VerticalOpen(row, col-1) {
		cells = append(cells, Cell{row, col - 1})
	}
	return cells
}

func outOfBounds(row, col int) error {
	return fmt.Errorf("%w: cell %d,%d", ErrOutOfBounds, row, col)
}
