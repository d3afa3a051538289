package maze

import (
	"strings"

	"github.com/beka-birhanu/maze-solver-api/search"
)

// Render draws the grid the way a terminal shows it: '█' for walls,
// 'A' and 'B' for the start and goal, '*' for cells on the solution
// path, spaces elsewhere. A nil result renders the bare maze.
func Render(g *search.Grid, res *search.Result) string {
	onPath := make(map[search.Cell]struct{})
	if res != nil {
		for _, step := range res.Steps {
			onPath[step.To] = struct{}{}
		}
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := search.Cell{Row: r, Col: c}
			_, star := onPath[cell]
			switch {
			case g.IsWall(cell):
				b.WriteRune(wallRune)
			case cell == g.Start():
				b.WriteByte(startChar)
			case cell == g.Goal():
				b.WriteByte(goalChar)
			case star:
				b.WriteByte(pathChar)
			default:
				b.WriteByte(openChar)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
