package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/maze-solver-api/search"
)

const maxMazeDimenssion = 20

// carveCell tracks which of a passage's four walls are still standing
// while the maze is carved.
type carveCell struct {
	northWall bool
	southWall bool
	eastWall  bool
	westWall  bool
}

// carveMove is one step of the carving walk between adjacent passages.
type carveMove struct {
	from      search.Cell
	to        search.Cell
	direction string
}

// carveDirections is an ordered slice, not a map: with a fixed seed the
// walk must consult candidates in a fixed order to reproduce the maze.
var carveDirections = []struct {
	name       string
	dRow, dCol int
}{
	{"North", -1, 0},
	{"South", 1, 0},
	{"East", 0, 1},
	{"West", 0, -1},
}

type carver struct {
	width  int
	height int
	grid   [][]carveCell
	rng    *rand.Rand
}

// Generate creates a random rows-by-cols maze with Wilson's-algorithm
// random walks, then widens it into a tile grid of (2*rows+1) by
// (2*cols+1) cells. Every passage ends up reachable, so the returned
// grid always has a solution; the start sits at the bottom-left passage
// and the goal at the top-right. The seed fixes the layout; pass a
// non-positive seed for a time-based one.
func Generate(rows, cols int, seed int64) (*search.Grid, error) {
	if min(rows, cols) < 2 || max(rows, cols) > maxMazeDimenssion {
		return nil, fmt.Errorf("Invalid maze dimensions")
	}

	if seed <= 0 {
		seed = time.Now().UnixNano()
	}

	grid := make([][]carveCell, rows)
	for i := range grid {
		grid[i] = make([]carveCell, cols)
		for j := range grid[i] {
			grid[i][j] = carveCell{
				northWall: true,
				southWall: true,
				eastWall:  true,
				westWall:  true,
			}
		}
	}

	c := &carver{
		width:  cols,
		height: rows,
		grid:   grid,
		rng:    rand.New(rand.NewSource(seed)),
	}
	c.generateMaze()

	return search.NewGridFromTiles(c.tileLayout())
}

// randomCellPosition picks a random passage position.
func (c *carver) randomCellPosition() search.Cell {
	return search.Cell{Row: c.rng.Intn(c.height), Col: c.rng.Intn(c.width)}
}

// randomUnvisitedCellPosition picks a random passage that has not been
// connected to the carved tree yet.
func (c *carver) randomUnvisitedCellPosition(visited map[search.Cell]struct{}) search.Cell {
	for {
		pos := c.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists the moves to every in-bounds adjacent passage.
func (c *carver) neighbors(pos search.Cell) []carveMove {
	var result []carveMove
	for _, d := range carveDirections {
		neighbor := search.Cell{Row: pos.Row + d.dRow, Col: pos.Col + d.dCol}
		if neighbor.Row >= 0 && neighbor.Row < c.height && neighbor.Col >= 0 && neighbor.Col < c.width {
			result = append(result, carveMove{from: pos, to: neighbor, direction: d.name})
		}
	}
	return result
}

// openWall removes the wall between the two passages of a move.
func (c *carver) openWall(move carveMove) {
	switch move.direction {
	case "North":
		c.grid[move.from.Row][move.from.Col].northWall = false
		c.grid[move.to.Row][move.to.Col].southWall = false
	case "South":
		c.grid[move.from.Row][move.from.Col].southWall = false
		c.grid[move.to.Row][move.to.Col].northWall = false
	case "East":
		c.grid[move.from.Row][move.from.Col].eastWall = false
		c.grid[move.to.Row][move.to.Col].westWall = false
	case "West":
		c.grid[move.from.Row][move.from.Col].westWall = false
		c.grid[move.to.Row][move.to.Col].eastWall = false
	}
}

// randomWalk wanders from an unvisited passage until it touches the
// carved tree, remembering the last exit taken out of every passage.
func (c *carver) randomWalk(visited map[search.Cell]struct{}) map[search.Cell]carveMove {
	start := c.randomUnvisitedCellPosition(visited)
	visits := make(map[search.Cell]carveMove)
	cell := start

	for {
		neighbors := c.neighbors(cell)
		randomNeighbor := neighbors[c.rng.Intn(len(neighbors))]
		visits[cell] = randomNeighbor
		if _, included := visited[randomNeighbor.to]; included {
			break
		}
		cell = randomNeighbor.to
	}

	return visits
}

// generateMaze seeds the tree with one passage and keeps absorbing
// random walks until every passage is connected.
func (c *carver) generateMaze() {
	visited := make(map[search.Cell]struct{})
	visited[c.randomCellPosition()] = struct{}{}

	for len(visited) < c.width*c.height {
		for cell, move := range c.randomWalk(visited) {
			c.openWall(move)
			visited[cell] = struct{}{}
		}
	}
}

// tileLayout widens the carved passages into a tile grid: passages land
// on odd coordinates, the cells between them are open exactly where a
// wall was carved away.
func (c *carver) tileLayout() [][]search.Tile {
	tileRows := 2*c.height + 1
	tileCols := 2*c.width + 1

	layout := make([][]search.Tile, tileRows)
	for r := range layout {
		layout[r] = make([]search.Tile, tileCols)
		for col := range layout[r] {
			layout[r][col] = search.TileWall
		}
	}

	for r := 0; r < c.height; r++ {
		for col := 0; col < c.width; col++ {
			layout[2*r+1][2*col+1] = search.TileOpen
			if !c.grid[r][col].eastWall && col+1 < c.width {
				layout[2*r+1][2*col+2] = search.TileOpen
			}
			if !c.grid[r][col].southWall && r+1 < c.height {
				layout[2*r+2][2*col+1] = search.TileOpen
			}
		}
	}

	layout[2*(c.height-1)+1][1] = search.TileStart
	layout[1][2*(c.width-1)+1] = search.TileGoal
	return layout
}

// Layout renders a grid back to its text form, the inverse of Parse for
// generated mazes.
func Layout(g *search.Grid) string {
	var b []byte
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := search.Cell{Row: r, Col: c}
			switch {
			case g.IsWall(cell):
				b = append(b, '#')
			case cell == g.Start():
				b = append(b, startChar)
			case cell == g.Goal():
				b = append(b, goalChar)
			default:
				b = append(b, openChar)
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
