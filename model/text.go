package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedMaze = errors.New("malformed maze text")

// Maze text layout, one line per cell row and one line per row of edges below it:
//
//	o o|o
//	-   -
//	o|o o
//
// '|' and '-' are walls, a space is a passage.
const (
	textCell       = 'o'
	textVertical   = '|'
	textHorizontal = '-'
)

// WriteText renders the carved grid in the maze text layout.
func WriteText(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 2*g.cols)
	for r := 0; r < g.rows; r++ {
		// real line
		line = line[:0]
		for c := 0; c < g.cols; c++ {
			line = append(line, textCell)
			if c < g.cols-1 {
				if g.vertical[r][c] {
					line = append(line, ' ')
				} else {
					line = append(line, textVertical)
				}
			}
		}
		if _, err := fmt.Fprintln(bw, string(line)); err != nil {
			return err
		}
		if r == g.rows-1 {
			break
		}
		// bottom wall
		line = line[:0]
		for c := 0; c < g.cols; c++ {
			if g.horizontal[r][c] {
				line = append(line, ' ')
			} else {
				line = append(line, textHorizontal)
			}
			if c < g.cols-1 {
				line = append(line, ' ')
			}
		}
		if _, err := fmt.Fprintln(bw, strings.TrimRight(string(line), " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadText parses the maze text layout. Missing trailing characters are
// passages. Every cell of the returned grid is visited.
func ReadText(reader io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedMaze)
	}
	if len(lines)%2 == 0 {
		return nil, fmt.Errorf("%w: %d lines, want an odd count", ErrMalformedMaze, len(lines))
	}

	rows := (len(lines) + 1) / 2
	cols := (len(lines[0]) + 1) / 2
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMaze, err)
	}
	for i, s := range lines {
		r := i / 2
		if i%2 == 0 {
			if (len(s)+1)/2 != cols {
				return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedMaze, i+1, (len(s)+1)/2, cols)
			}
			for c := 0; c < cols; c++ {
				if s[2*c] == ' ' {
					return nil, fmt.Errorf("%w: line %d missing cell %d", ErrMalformedMaze, i+1, c)
				}
				g.visited[r][c] = true
				if c < cols-1 && s[2*c+1] == ' ' {
					g.vertical[r][c] = true
				}
			}
			continue
		}
		for c := 0; c < cols; c++ {
			if 2*c >= len(s) || s[2*c] == ' ' {
				g.horizontal[r][c] = true
			}
		}
	}
	return g, nil
}
