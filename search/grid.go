package search

import (
	"errors"
	"fmt"
)

// Tile is one square of a parsed maze layout.
type Tile byte

const (
	TileOpen Tile = iota
	TileWall
	TileStart
	TileGoal
)

// ErrMalformedMaze reports a layout that cannot form a valid grid:
// a missing, duplicated, walled, or out-of-bounds start or goal, or
// rows of differing widths.
var ErrMalformedMaze = errors.New("malformed maze")

// Move pairs an action with the cell it lands on.
type Move struct {
	Action Action
	To     Cell
}

// directions is ordered deliberately: neighbors are generated in exactly
// this sequence, which keeps depth-first runs reproducible. A map would
// randomize the expansion order between runs.
var directions = []struct {
	action     Action
	dRow, dCol int
}{
	{ActionUp, -1, 0},
	{ActionDown, 1, 0},
	{ActionLeft, 0, -1},
	{ActionRight, 0, 1},
}

// Grid is the immutable maze board: per-cell wall flags plus one
// designated start cell and one designated goal cell, which may
// coincide. Construct it with NewGrid or NewGridFromTiles; nothing
// mutates it afterwards.
type Grid struct {
	walls [][]bool
	rows  int
	cols  int
	start Cell
	goal  Cell
}

// NewGrid builds a Grid from a wall matrix and explicit start and goal
// cells. The walls are copied, so later changes to the argument do not
// leak in. It fails with an error wrapping ErrMalformedMaze when a row's
// width differs from the first row's, or when start or goal is out of
// bounds or sits on a wall.
func NewGrid(walls [][]bool, start, goal Cell) (*Grid, error) {
	rows := len(walls)
	cols := 0
	if rows > 0 {
		cols = len(walls[0])
	}

	copied := make([][]bool, rows)
	for r, row := range walls {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedMaze, r, len(row), cols)
		}
		copied[r] = make([]bool, cols)
		copy(copied[r], row)
	}

	g := &Grid{
		walls: copied,
		rows:  rows,
		cols:  cols,
		start: start,
		goal:  goal,
	}

	if !g.InBound(start) || g.IsWall(start) {
		return nil, fmt.Errorf("%w: start cell %v is not an open cell", ErrMalformedMaze, start)
	}
	if !g.InBound(goal) || g.IsWall(goal) {
		return nil, fmt.Errorf("%w: goal cell %v is not an open cell", ErrMalformedMaze, goal)
	}

	return g, nil
}

// NewGridFromTiles builds a Grid from a parsed tile layout, the form a
// maze parser hands over. On top of the NewGrid checks it fails with an
// error wrapping ErrMalformedMaze when the layout does not contain
// exactly one start tile and exactly one goal tile.
func NewGridFromTiles(layout [][]Tile) (*Grid, error) {
	rows := len(layout)
	cols := 0
	if rows > 0 {
		cols = len(layout[0])
	}

	walls := make([][]bool, rows)
	var starts, goals []Cell
	for r, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedMaze, r, len(row), cols)
		}
		walls[r] = make([]bool, cols)
		for c, tile := range row {
			switch tile {
			case TileWall:
				walls[r][c] = true
			case TileStart:
				starts = append(starts, Cell{Row: r, Col: c})
			case TileGoal:
				goals = append(goals, Cell{Row: r, Col: c})
			}
		}
	}

	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one start cell, found %d", ErrMalformedMaze, len(starts))
	}
	if len(goals) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one goal cell, found %d", ErrMalformedMaze, len(goals))
	}

	return NewGrid(walls, starts[0], goals[0])
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Start returns the designated start cell.
func (g *Grid) Start() Cell {
	return g.start
}

// Goal returns the designated goal cell.
func (g *Grid) Goal() Cell {
	return g.goal
}

// InBound reports whether the cell lies inside the grid bounds.
func (g *Grid) InBound(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsWall reports whether the cell is a wall. Cells outside the bounds
// are not walls; callers screen those with InBound.
func (g *Grid) IsWall(c Cell) bool {
	return g.InBound(c) && g.walls[c.Row][c.Col]
}

// Neighbors yields the legal moves out of a cell in the fixed order up,
// down, left, right, keeping only in-bounds, non-wall destinations.
func (g *Grid) Neighbors(c Cell) []Move {
	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		to := Cell{Row: c.Row + d.dRow, Col: c.Col + d.dCol}
		if g.InBound(to) && !g.IsWall(to) {
			moves = append(moves, Move{Action: d.action, To: to})
		}
	}
	return moves
}
