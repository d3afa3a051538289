package i

import (
	"context"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
)

// SolveManager runs searches over stored mazes and keeps their outcomes.
type SolveManager interface {
	// Solve runs the strategy over the maze and stores the outcome under
	// solutionID. A cached outcome for the same maze and strategy is
	// reused instead of searching again.
	Solve(ctx context.Context, solutionID, mazeID, requestedBy uuid.UUID, strategy search.Strategy) (*maze.Solution, error)

	// SolutionByID retrieves a stored solution.
	SolutionByID(id uuid.UUID) (*maze.Solution, error)

	// RenderPNG rasterizes a maze, solving it first when strategy names
	// one. showExplored colors every cell the search expanded.
	RenderPNG(ctx context.Context, mazeID, requestedBy uuid.UUID, strategy string, showExplored bool) ([]byte, error)
}

// SolveScheduler accepts solve jobs for background execution.
type SolveScheduler interface {
	// Submit queues a solve job and returns the ID its solution will be
	// stored under once a worker picks it up.
	Submit(ctx context.Context, mazeID, requestedBy uuid.UUID, strategy search.Strategy) (uuid.UUID, error)
}
