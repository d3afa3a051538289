package i

import (
	"github.com/beka-birhanu/maze-solver-api/identity"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *identity.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*identity.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*identity.User, error)
}

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	Save(m *maze.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns an error if the maze is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*maze.Maze, error)

	// ByOwner retrieves every maze a user has stored.
	ByOwner(ownerID uuid.UUID) ([]*maze.Maze, error)
}

// SolutionRepo defines the interface for solution persistence operations.
type SolutionRepo interface {
	// Save inserts or updates a solution in the repository.
	Save(s *maze.Solution) error

	// ByID retrieves a solution by its unique ID.
	// Returns an error if the solution is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*maze.Solution, error)

	// ByMaze retrieves every stored solution of a maze.
	ByMaze(mazeID uuid.UUID) ([]*maze.Solution, error)
}
