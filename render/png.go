// Package render rasterizes grids and search results into PNG images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/beka-birhanu/maze-solver-api/search"
)

// Cells are 50px squares inset by a 2px border, drawn on a black canvas
// so the borders read as grid lines.
const (
	cellSize   = 50
	cellBorder = 2
)

var (
	borderColor   = color.RGBA{0, 0, 0, 255}
	wallColor     = color.RGBA{40, 40, 40, 255}
	startColor    = color.RGBA{255, 0, 0, 255}
	goalColor     = color.RGBA{0, 171, 28, 255}
	pathColor     = color.RGBA{220, 235, 113, 255}
	exploredColor = color.RGBA{212, 97, 85, 255}
	openColor     = color.RGBA{237, 240, 252, 255}
)

// Image rasterizes the grid, coloring the solution path and, when
// showExplored is set, every cell the search expanded. Path color wins
// over explored color and the start and goal keep their own colors
// either way. A nil result draws the bare maze.
func Image(g *search.Grid, res *search.Result, showExplored bool) *image.RGBA {
	onPath := make(map[search.Cell]struct{})
	if res != nil {
		for _, step := range res.Steps {
			onPath[step.To] = struct{}{}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Cols()*cellSize, g.Rows()*cellSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{borderColor}, image.Point{}, draw.Src)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := search.Cell{Row: r, Col: c}
			fill := image.Rect(
				c*cellSize+cellBorder,
				r*cellSize+cellBorder,
				(c+1)*cellSize-cellBorder,
				(r+1)*cellSize-cellBorder,
			)
			fillColor := cellColor(g, res, cell, onPath, showExplored)
			draw.Draw(img, fill, &image.Uniform{fillColor}, image.Point{}, draw.Src)
		}
	}
	return img
}

// WritePNG encodes the rasterized grid to w.
func WritePNG(w io.Writer, g *search.Grid, res *search.Result, showExplored bool) error {
	return png.Encode(w, Image(g, res, showExplored))
}

func cellColor(g *search.Grid, res *search.Result, cell search.Cell, onPath map[search.Cell]struct{}, showExplored bool) color.RGBA {
	_, star := onPath[cell]
	explored := false
	if res != nil {
		_, explored = res.Explored[cell]
	}

	switch {
	case g.IsWall(cell):
		return wallColor
	case cell == g.Start():
		return startColor
	case cell == g.Goal():
		return goalColor
	case star:
		return pathColor
	case showExplored && explored:
		return exploredColor
	default:
		return openColor
	}
}
