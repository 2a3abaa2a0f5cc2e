package model

import "errors"

var (
	ErrOutOfBounds      = errors.New("cell out of bounds")
	ErrInvalidDimension = errors.New("invalid grid dimension")
)

// Cell addresses one grid unit.
type Cell struct {
	Row, Col int
}

// Grid is the lattice the generator carves. vertical[r][c] is the edge between
// (r,c) and (r,c+1), horizontal[r][c] the edge between (r,c) and (r+1,c).
// true means the wall has been removed.
type Grid struct {
	rows, cols int
	visited    [][]bool
	vertical   [][]bool
	horizontal [][]bool
}
