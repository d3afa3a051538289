/*
Package maze handles everything around the search core that makes mazes
usable: the text format they are exchanged in, random generation,
terminal rendering, and the stored forms of mazes and their solutions.
*/
package maze

import (
	"strings"

	"github.com/beka-birhanu/maze-solver-api/search"
)

// Characters of the maze text format.
const (
	startChar = 'A'
	goalChar  = 'B'
	openChar  = ' '
	pathChar  = '*'
	wallRune  = '█'
)

// Parse reads the text form of a maze: 'A' marks the start, 'B' the
// goal, spaces are open cells, and any other character is a wall. Each
// line is one row; a trailing carriage return on a line is tolerated.
// Layouts that do not form a valid grid fail with an error wrapping
// search.ErrMalformedMaze.
func Parse(data []byte) (*search.Grid, error) {
	text := strings.TrimRight(string(data), "\n")
	lines := strings.Split(text, "\n")

	layout := make([][]search.Tile, len(lines))
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]search.Tile, 0, len(line))
		for _, ch := range line {
			switch ch {
			case startChar:
				row = append(row, search.TileStart)
			case goalChar:
				row = append(row, search.TileGoal)
			case openChar:
				row = append(row, search.TileOpen)
			default:
				row = append(row, search.TileWall)
			}
		}
		layout[r] = row
	}

	return search.NewGridFromTiles(layout)
}
