package search

// Cell identifies a single grid square by row and column.
// It is a plain value: copy it freely, compare it with ==, key maps with it.
type Cell struct {
	Row int // Row index of the cell, counted from the top
	Col int // Col index of the cell, counted from the left
}
