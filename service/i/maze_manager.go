package i

import (
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// MazeManager owns the lifecycle of stored mazes.
type MazeManager interface {
	// Create validates and stores an uploaded maze layout.
	Create(ownerID uuid.UUID, name, layout string) (*maze.Maze, error)

	// Generate creates and stores a random rows-by-cols maze. A
	// non-positive seed picks a time-based one.
	Generate(ownerID uuid.UUID, name string, rows, cols int, seed int64) (*maze.Maze, error)

	// ByID retrieves a stored maze.
	ByID(id uuid.UUID) (*maze.Maze, error)

	// ByOwner retrieves every maze a user has stored.
	ByOwner(ownerID uuid.UUID) ([]*maze.Maze, error)
}
